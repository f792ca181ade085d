package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// NewJSON creates a validator whose field errors report JSON names
// (client_id instead of ClientID), for request payload validation.
func NewJSON() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Describe flattens a validation error into "field (tag=param)" fragments.
func Describe(err error) []string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		if e.Param() != "" {
			out = append(out, e.Field()+" ("+e.Tag()+"="+e.Param()+")")
			continue
		}
		out = append(out, e.Field()+" ("+e.Tag()+")")
	}
	return out
}
