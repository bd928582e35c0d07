package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationResult collects field errors from an explicit validity check.
// A result with no errors is valid.
type ValidationResult struct {
	Errors map[string]string `json:"errors,omitempty"`
}

func NewValidationResult() ValidationResult {
	return ValidationResult{Errors: map[string]string{}}
}

// Add records msg for field, keeping the first message per field.
func (v *ValidationResult) Add(field, msg string) {
	if v.Errors == nil {
		v.Errors = map[string]string{}
	}
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = msg
	}
}

func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// checkStruct runs the struct tags of s and maps each failing field (by its
// JSON name) to the message in messages.
func checkStruct(s interface{}, messages map[string]string) ValidationResult {
	result := NewValidationResult()
	var verrs validator.ValidationErrors
	if err := validate.Struct(s); errors.As(err, &verrs) {
		for _, fe := range verrs {
			msg, ok := messages[fe.Field()]
			if !ok {
				msg = fe.Error()
			}
			result.Add(fe.Field(), msg)
		}
	}
	return result
}
