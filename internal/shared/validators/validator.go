package validators

import (
	"fmt"
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

// Describe flattens a validation error into "field (tag=param), ..." where field is the
// lower-cased namespace without the root struct name (e.g. "server.port").
// Errors that are not ValidationErrors are returned as their message.
func Describe(err error) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}
	var parts []string
	for _, e := range ve {
		parts = append(parts, describeField(e))
	}
	return strings.Join(parts, ", ")
}

func describeField(e FieldError) string {
	field := e.Field()
	if ns := e.StructNamespace(); ns != "" {
		// "Config.Server.Port" -> "server.port"
		segments := strings.Split(ns, ".")
		if len(segments) >= 2 {
			field = strings.ToLower(strings.Join(segments[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
