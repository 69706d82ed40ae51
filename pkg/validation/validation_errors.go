package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single rejected field as returned to API callers.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, FieldError{
			Field:   fieldPath(e),
			Message: formatSingleError(e),
		})
	}
	return details
}

// FormatBindingError describes a request body that could not be decoded.
func FormatBindingError(err error) []FieldError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return []FieldError{{Field: typeErr.Field, Message: typeMessage(typeErr)}}
	case errors.As(err, &syntaxErr):
		return []FieldError{{Field: "body", Message: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Field: "body", Message: "request body is required"}}
	default:
		return FormatValidationErrors(err)
	}
}

var timeType = reflect.TypeOf(time.Time{})

func typeMessage(e *json.UnmarshalTypeError) string {
	switch {
	case e.Value == "null":
		return "field cannot be null"
	case e.Type == timeType:
		return "invalid date, expected YYYY-MM-DD or RFC 3339"
	case e.Type == nil:
		return "has an invalid value"
	default:
		return "must be of type " + jsonType(e.Type.Kind().String())
	}
}

func jsonType(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "bool":
		return "boolean"
	case kind == "struct", kind == "map":
		return "object"
	case kind == "slice", kind == "array":
		return "array"
	default:
		return kind
	}
}

// fieldPath drops the top-level struct name from the namespace ("CVCreate.name" -> "name").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "field required"

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be at least %s", param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be at most %s", param)

	case "len":
		return fmt.Sprintf("must be exactly %s characters", param)

	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(param), ", "))

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
