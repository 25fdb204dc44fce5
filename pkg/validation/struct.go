package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// StructValidator checks tagged structs and reports failures as FieldErrors
// keyed by their JSON names.
type StructValidator struct {
	v *validator.Validate
}

// NewStructValidator creates a validator with the custom "finite" rule
// registered.
func NewStructValidator() *StructValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// NaN and the infinities slip through gte/lte comparisons
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return mathutil.IsFinite(fl.Field().Float())
	})

	return &StructValidator{v: v}
}

// Validate returns nil, FieldErrors, or the validator's own error when value
// cannot be validated at all.
func (s *StructValidator) Validate(value interface{}) error {
	err := s.v.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return fieldErrs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "finite":
		return "is not a number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
