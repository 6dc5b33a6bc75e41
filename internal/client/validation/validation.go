// Package validation checks registration and profile input locally
// before it is sent to the server, mirroring the server's policy so
// most rejections are caught without a round trip.
package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// RegisterInput is validated before calling the register endpoint.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,strongpwd"`
}

// ProfileInput is validated before a profile update.
type ProfileInput struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
}

// New returns a validator with the custom strongpwd rule registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	return v
}

// StrongPassword reports whether pw satisfies the password policy:
// at least 8 characters with upper case, lower case, a digit and a
// special character.
func StrongPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Strength grades a password for user feedback. It is advisory only;
// StrongPassword is what gates registration.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "none"
	}
}

// PasswordStrength mirrors the grading the account UI shows while
// typing: short passwords are weak; a digit or special character lifts
// to medium; digit, special and upper case together make strong.
func PasswordStrength(pw string) Strength {
	if pw == "" {
		return StrengthNone
	}
	if utf8.RuneCountInString(pw) < 8 {
		return StrengthWeak
	}

	var upper, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	if digit && special && upper {
		return StrengthStrong
	}
	if digit || special {
		return StrengthMedium
	}
	return StrengthWeak
}

// Explain converts a validator error into a short human-readable
// message suitable for direct display.
func Explain(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch strings.ToLower(fe.Field()) {
		case "username":
			msgs = append(msgs, "username must be between 3 and 50 characters")
		case "email":
			msgs = append(msgs, "email is invalid")
		case "password":
			msgs = append(msgs, "password must be at least 8 characters with upper and lower case letters, a digit and a special character")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
