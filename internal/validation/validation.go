// Package validation builds the struct validators shared by configuration
// loading and request handling.
package validation

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/tango/internal/vocabulary"
)

// Validator validates structs and renders failures as English messages.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// FieldViolation is one failed rule of one field.
type FieldViolation struct {
	Field       string
	Description string
}

// New returns a validator naming fields after the given struct tag,
// e.g. "mapstructure" for configuration or "json" for requests.
func New(tagKey string) (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tagKey), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{tag: "file", fn: isFileReadable, message: "{0} must be an existing and readable file"},
		{tag: "level", fn: isLevel, message: "{0} must be one of N5, N4, N3, N2 or N1"},
		{tag: "mode", fn: isMode, message: "{0} must be kana or kanji"},
	}
	for _, rule := range rules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", rule.tag, err)
		}
		tag, message := rule.tag, rule.message
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		}); err != nil {
			return nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Violations validates s and returns every failed rule, or nil.
// Errors other than rule failures are returned as is.
func (v *Validator) Violations(s any) ([]FieldViolation, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate.Struct > %w", err)
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		_, field, _ := strings.Cut(e.Namespace(), ".")
		violations = append(violations, FieldViolation{
			Field:       field,
			Description: e.Translate(v.translator),
		})
	}
	return violations, nil
}

// Validate is Violations joined into a single error.
func (v *Validator) Validate(s any) error {
	violations, err := v.Violations(s)
	if err != nil {
		return err
	}
	if len(violations) == 0 {
		return nil
	}
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violation.Description)
	}
	return errors.New(strings.Join(messages, ", "))
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(8))) != 0
}

func isLevel(fl validator.FieldLevel) bool {
	_, err := vocabulary.ParseLevel(fl.Field().String())
	return err == nil
}

func isMode(fl validator.FieldLevel) bool {
	_, err := vocabulary.ParseMode(fl.Field().String())
	return err == nil
}
