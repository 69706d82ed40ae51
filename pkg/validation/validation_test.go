package validation

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FirstName string `json:"first_name" validate:"required,max=5"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	UseJSONFieldNames(v)
	return v
}

func TestFormatValidationErrors(t *testing.T) {
	err := newValidator().Struct(sample{FirstName: "Bobbyyyy", Email: "nope"})
	require.Error(t, err)

	details := FormatValidationErrors(err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "first_name", Message: "must be at most 5 characters"},
		{Field: "email", Message: "must be a valid email address"},
	}, details)
}

func TestFormatValidationErrors_Required(t *testing.T) {
	details := FormatValidationErrors(newValidator().Struct(sample{}))
	assert.Equal(t, []FieldError{{Field: "first_name", Message: "field required"}}, details)
}

func TestFormatBindingError(t *testing.T) {
	var target struct {
		Rating int `json:"rating"`
	}

	err := json.Unmarshal([]byte(`{"rating":"high"}`), &target)
	assert.Equal(t, []FieldError{{Field: "rating", Message: "must be of type number"}}, FormatBindingError(err))

	err = json.Unmarshal([]byte(`{"rating":`), &target)
	details := FormatBindingError(err)
	require.Len(t, details, 1)
	assert.Equal(t, "body", details[0].Field)
}

func TestFormatBindingError_TypedValues(t *testing.T) {
	null := &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(""), Field: "name"}
	assert.Equal(t, []FieldError{{Field: "name", Message: "field cannot be null"}}, FormatBindingError(null))

	date := &json.UnmarshalTypeError{Value: `string "01/02/2020"`, Type: reflect.TypeOf(time.Time{}), Field: "start"}
	assert.Equal(t, []FieldError{{Field: "start", Message: "invalid date, expected YYYY-MM-DD or RFC 3339"}}, FormatBindingError(date))
}
