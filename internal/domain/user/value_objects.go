package user

import (
	"regexp"
	"strings"

	"hall-allocation/internal/pkg/errs"
)

var (
	ErrInvalidEmail               = errs.NewKind(errs.ErrValidation, "invalid email format")
	ErrInvalidRole                = errs.NewKind(errs.ErrValidation, "role must be admin, lecturer or student")
	ErrPasswordTooWeak            = errs.NewKind(errs.ErrValidation, "password must be at least 8 characters long")
	ErrFullNameRequired           = errs.NewKind(errs.ErrValidation, "full name is required")
	ErrRegistrationNumberRequired = errs.NewKind(errs.ErrValidation, "registration number is required for students")
	ErrEmailTaken                 = errs.NewKind(errs.ErrValidation, "email is already registered")
	ErrNotFound                   = errs.NewKind(errs.ErrNotFound, "user not found")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
