package domain

import (
	"regexp"
	"strings"

	dErrors "realestate/pkg/domain-errors"
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Email is a trimmed, syntactically valid address. Equality ignores case.
type Email struct {
	value string
}

func ParseEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Email{}, dErrors.New(dErrors.CodeValidation, "email cannot be empty")
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, dErrors.New(dErrors.CodeValidation, "invalid email format")
	}
	return Email{value: trimmed}, nil
}

// MustEmail panics on invalid input. Use only in tests and fixtures.
func MustEmail(s string) Email {
	e, err := ParseEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }

func (e Email) Equal(other Email) bool {
	return folder.String(e.value) == folder.String(other.value)
}

// Domain returns the part after '@'.
func (e Email) Domain() string {
	if at := strings.LastIndexByte(e.value, '@'); at >= 0 {
		return e.value[at+1:]
	}
	return ""
}
