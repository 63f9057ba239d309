// Package validator adapts go-playground/validator to echo and reports
// failures as field violations resolved against the message table.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/go-playground/validator/v10"
)

const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var mobilePattern = regexp.MustCompile(`^[0-9]{11}$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the password and mobile rules and reports fields by their JSON name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate returns a Validation AppError listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, toViolation(fieldErr))
	}

	return domainerrors.NewValidationError(violations)
}

func toViolation(fieldErr validator.FieldError) domainerrors.FieldViolation {
	key := "validation.invalid"
	switch fieldErr.Tag() {
	case "required", "min", "max", "gte", "email", "mobile", "password", "number":
		key = "validation." + fieldErr.Tag()
	}

	return domainerrors.FieldViolation{
		Field:      fieldErr.Field(),
		MessageKey: key,
		Params: map[string]string{
			"field": fieldErr.Field(),
			"param": fieldErr.Param(),
		},
	}
}

// IsStrongPassword requires at least 8 characters with an ASCII upper-case
// letter, an ASCII lower-case letter, an ASCII digit and one of passwordSpecials.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	return upper && lower && digit && special
}
