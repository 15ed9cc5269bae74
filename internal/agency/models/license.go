package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dErrors "realestate/pkg/domain-errors"
)

const minLicenseLength = 5

// LicenseNumber is an agency's brokerage licence. Equality ignores case.
type LicenseNumber struct {
	value string
}

func NewLicenseNumber(s string) (LicenseNumber, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return LicenseNumber{}, dErrors.New(dErrors.CodeValidation, "license number cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) < minLicenseLength {
		return LicenseNumber{}, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("license number must be at least %d characters", minLicenseLength))
	}
	return LicenseNumber{value: trimmed}, nil
}

// MustLicenseNumber panics on invalid input. Use only in tests and fixtures.
func MustLicenseNumber(s string) LicenseNumber {
	l, err := NewLicenseNumber(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l LicenseNumber) String() string { return l.value }

func (l LicenseNumber) IsZero() bool { return l.value == "" }

func (l LicenseNumber) Equal(other LicenseNumber) bool {
	return strings.EqualFold(l.value, other.value)
}
