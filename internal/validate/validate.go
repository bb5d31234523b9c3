// Package validate wires go-playground/validator into Echo so that handlers
// can call c.Validate on bound request structs. Validation failures stop at
// the boundary; domain services never see malformed input.
package validate

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New builds the validator and registers the custom password rule: at least
// one lowercase letter, one uppercase letter and one digit, minimum 6 runes.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("userpassword", func(fl validator.FieldLevel) bool {
		return PasswordOK(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate checks struct tags and returns the first violation as an error.
func (val *Validator) Validate(i interface{}) error {
	return val.v.Struct(i)
}

// PasswordOK reports whether the password satisfies the account rules.
// Implemented as a scan since RE2 has no lookahead.
func PasswordOK(pw string) bool {
	if len(pw) < 6 || len(pw) > 60 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
