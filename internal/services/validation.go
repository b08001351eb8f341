package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/exocatalog/internal/platform/apierr"
)

var validatorOnce sync.Once

// RegisterValidatorTags makes validation errors report json/form field names
// instead of Go field names. Safe to call repeatedly.
func RegisterValidatorTags() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// Validate runs the binding tags of in through gin's validator.
func Validate(in any) error {
	RegisterValidatorTags()
	return binding.Validator.ValidateStruct(in)
}

// FieldErrors flattens validator and decoding failures into per-field messages.
func FieldErrors(err error) []apierr.FieldError {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]apierr.FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, apierr.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		return out
	}
	var fe fieldErrors
	if errors.As(err, &fe) {
		return []apierr.FieldError(fe)
	}
	return []apierr.FieldError{{Field: "non_field_errors", Message: err.Error()}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "datetime":
		return "Enter a valid date."
	case "numeric":
		return "Enter a number."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

// fieldErrors is an error carrying already-built per-field messages.
type fieldErrors []apierr.FieldError

func (f fieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, e := range f {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// mergeFieldErrors combines decode errors with validator errors, keeping the
// first message per field.
func mergeFieldErrors(decoded []apierr.FieldError, validateErr error) []apierr.FieldError {
	seen := map[string]bool{}
	var out []apierr.FieldError
	for _, fe := range decoded {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			out = append(out, fe)
		}
	}
	for _, fe := range FieldErrors(validateErr) {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			out = append(out, fe)
		}
	}
	return out
}
