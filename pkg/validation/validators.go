package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Digits, spaces, parentheses and hyphens only
	phoneRegex = regexp.MustCompile(`^[0-9 ()-]+$`)

	// Minimal local@domain.tld shape. Deliberately loose: the mailbox is
	// the real validator, this only catches obvious typos.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// New returns a validator instance with the custom validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("consult_phone", ConsultPhone)
	_ = v.RegisterValidation("basic_email", BasicEmail)
}

// ConsultPhone validates a phone number against the allowed character set
func ConsultPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// BasicEmail validates an email address against a simple shape check
func BasicEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return emailRegex.MatchString(val)
}
