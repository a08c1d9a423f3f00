package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/brtemplate/authgate/internal/pkg/document"
	"github.com/go-playground/validator/v10"
)

// Validator defines the interface that needs to be implemented by all validation strategies.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

type GoPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*GoPlaygroundValidator)(nil)

const tagDocument = "document"

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// document accepts either a CPF or a CNPJ, formatted or not.
	if err := v.RegisterValidation(tagDocument, func(fl validator.FieldLevel) bool {
		return document.Valid(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tagDocument, err))
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format YYYY-MM-DD", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case tagDocument:
		return fmt.Sprintf("%s must be a valid CPF or CNPJ", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
