package domain

import (
	"regexp"
	"strings"

	dErrors "realestate/pkg/domain-errors"
)

var russianPhonePattern = regexp.MustCompile(`^\+7\d{10}$`)

// PhoneNumber is a Russian phone number stored in +7XXXXXXXXXX form.
type PhoneNumber struct {
	value string
}

// NormalizePhone strips everything except digits and a leading '+', then
// applies the domestic prefixes: 8XXXXXXXXXX -> +7XXXXXXXXXX, a bare 10-digit
// number gets +7, an 11-digit number starting with 7 gets '+'.
func NormalizePhone(s string) string {
	trimmed := strings.TrimSpace(s)
	hasPlus := strings.HasPrefix(trimmed, "+")

	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case hasPlus:
		return "+" + digits
	case strings.HasPrefix(digits, "8"):
		return "+7" + digits[1:]
	case len(digits) == 10:
		return "+7" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "7"):
		return "+" + digits
	default:
		return "+" + digits
	}
}

func ParsePhoneNumber(s string) (PhoneNumber, error) {
	if strings.TrimSpace(s) == "" {
		return PhoneNumber{}, dErrors.New(dErrors.CodeValidation, "phone number cannot be empty")
	}
	normalized := NormalizePhone(s)
	if !russianPhonePattern.MatchString(normalized) {
		return PhoneNumber{}, dErrors.New(dErrors.CodeValidation, "invalid Russian phone number format")
	}
	return PhoneNumber{value: normalized}, nil
}

// MustPhoneNumber panics on invalid input. Use only in tests and fixtures.
func MustPhoneNumber(s string) PhoneNumber {
	p, err := ParsePhoneNumber(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PhoneNumber) String() string { return p.value }

func (p PhoneNumber) IsZero() bool { return p.value == "" }

func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return strings.EqualFold(p.value, other.value)
}
