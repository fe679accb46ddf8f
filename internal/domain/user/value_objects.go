package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"groupbuy-service/internal/pkg/errs"
)

const MaxDisplayNameLength = 50

var (
	ErrInvalidEmail       = errs.Class("invalid email format", errs.ErrInvalidArgument)
	ErrInvalidRole        = errs.Class("invalid role", errs.ErrInvalidArgument)
	ErrPasswordTooWeak    = errs.Class("password must be at least 8 characters long", errs.ErrInvalidArgument)
	ErrInvalidDisplayName = errs.Class("display name must be 1 to 50 characters", errs.ErrInvalidArgument)
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

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxDisplayNameLength {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: s}, nil
}

func (d DisplayName) Value() string {
	return d.value
}
