// Package validation builds the request validator shared by both API
// surfaces and renders validation failures into the field→message map
// the services return on 400s.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New creates a validator that reports fields by their json tag name and
// understands decimal.Decimal values.
func New() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Numeric rules (gt, gte, ...) see decimals as float64.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return validate
}

// Messages converts a validator error into a field→message map. Non
// validation errors yield a single generic entry.
func Messages(err error) map[string]string {
	messages := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		messages["error"] = "invalid request body"
		return messages
	}

	for _, fe := range verrs {
		messages[fe.Field()] = message(fe)
	}
	return messages
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be positive", fe.Field())
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
