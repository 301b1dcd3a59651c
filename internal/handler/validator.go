package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CyberClicker_Go/internal/game"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator with the game's custom tags
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("language", validateLanguage)
	_ = v.RegisterValidation("printable", validatePrintable)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "hexcolor":
			errs[field] = "Must be a hex color like #00ff41"
		case "language":
			errs[field] = "Unsupported language"
		case "printable":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateLanguage accepts any tag whose base language the game supports
func validateLanguage(fl validator.FieldLevel) bool {
	_, err := game.NormalizeLanguage(fl.Field().String())
	return err == nil
}

// validatePrintable rejects control characters such as newlines and tabs
func validatePrintable(fl validator.FieldLevel) bool {
	return !game.HasControlChars(fl.Field().String())
}
