// Package validation applies one validator instance uniformly to every
// mutating payload and turns failures into field-level error maps.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and returns a field -> messages map, or nil when the
// payload is valid.
func Struct(s interface{}) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_schema": {"Invalid input type."}}
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
