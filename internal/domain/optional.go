package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Optional is an update field for a non-nullable column. Set is true only
// when the key was present in the payload.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON rejects null with a type error so the decoder reports the
// offending field.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf((*T)(nil)).Elem()}
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ApplyTo copies the value into dst when the field was present.
func (o Optional[T]) ApplyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

func (o Optional[T]) fieldValue() any {
	if !o.Set {
		return nil
	}
	return o.Value
}

// Nullable is an update field for a nullable column. A present null clears
// the column; an absent key leaves it untouched.
type Nullable[T any] struct {
	Value *T
	Set   bool
}

// Null returns a present Nullable that clears the column.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// NullableOf returns a present Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: &v, Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if isJSONNull(data) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// ApplyTo overwrites dst (including with nil) when the field was present.
func (n Nullable[T]) ApplyTo(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

func (n Nullable[T]) fieldValue() any {
	if !n.Set || n.Value == nil {
		return nil
	}
	return *n.Value
}

// Date accepts either an RFC 3339 timestamp or a plain YYYY-MM-DD date.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(time.Time{})}
	}
	*d = parsed
	return nil
}

func (d Date) fieldValue() any {
	return d.Time
}

// datePtr converts an optional input date into the stored representation.
func datePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func isJSONNull(data []byte) bool {
	return strings.TrimSpace(string(data)) == "null"
}

type fieldValuer interface {
	fieldValue() any
}

// FieldValue unwraps Optional, Nullable and Date so that validator tags apply to
// the carried value. Absent fields come back as nil and are skipped by
// omitempty.
func FieldValue(field reflect.Value) interface{} {
	if v, ok := field.Interface().(fieldValuer); ok {
		return v.fieldValue()
	}
	return nil
}

// FieldTypes lists every wrapper instantiation used by the payload shapes.
func FieldTypes() []interface{} {
	return []interface{}{
		Date{},
		Optional[string]{},
		Optional[int]{},
		Optional[bool]{},
		Optional[Date]{},
		Nullable[string]{},
		Nullable[Date]{},
	}
}
