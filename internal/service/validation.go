package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
)

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(optionalValue[string], model.Optional[string]{})
	v.RegisterCustomTypeFunc(optionalValue[int], model.Optional[int]{})
	return v
}

// optionalValue exposes a patch field to the tag rules: an absent key is a
// nil pointer (skipped by omitnil), an explicit null is the zero value
// (caught by required).
func optionalValue[T any](field reflect.Value) any {
	o, ok := field.Interface().(model.Optional[T])
	if !ok || !o.Set {
		return (*T)(nil)
	}
	if o.Value == nil {
		var zero T
		return zero
	}
	return *o.Value
}

// validate runs v over input and converts failures into a
// *appErrors.ValidationError listing every offending field.
func validate(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]appErrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, appErrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return appErrors.NewValidation(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "gt":
		return "must be a positive id"
	default:
		return "is invalid"
	}
}
