package domain

import (
	"fmt"

	dErrors "realestate/pkg/domain-errors"
)

// ContactInfo pairs the email and phone a client or agency is reached by.
// Invariant: both parts are present.
type ContactInfo struct {
	email Email
	phone PhoneNumber
}

func NewContactInfo(email Email, phone PhoneNumber) (ContactInfo, error) {
	var v dErrors.Validation
	v.Check(!email.IsZero(), "email is required")
	v.Check(!phone.IsZero(), "phone number is required")
	if err := v.Err(); err != nil {
		return ContactInfo{}, err
	}
	return ContactInfo{email: email, phone: phone}, nil
}

// ParseContactInfo validates both raw values and reports every failure.
func ParseContactInfo(email, phone string) (ContactInfo, error) {
	var v dErrors.Validation
	e, err := ParseEmail(email)
	v.Merge(err)
	p, err := ParsePhoneNumber(phone)
	v.Merge(err)
	if err := v.Err(); err != nil {
		return ContactInfo{}, err
	}
	return ContactInfo{email: e, phone: p}, nil
}

// MustContactInfo panics on invalid input. Use only in tests and fixtures.
func MustContactInfo(email, phone string) ContactInfo {
	c, err := ParseContactInfo(email, phone)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ContactInfo) Email() Email { return c.email }

func (c ContactInfo) Phone() PhoneNumber { return c.phone }

func (c ContactInfo) IsZero() bool { return c.email.IsZero() && c.phone.IsZero() }

func (c ContactInfo) Equal(other ContactInfo) bool {
	return c.email.Equal(other.email) && c.phone.Equal(other.phone)
}

func (c ContactInfo) String() string {
	return fmt.Sprintf("Email: %s, Phone: %s", c.email, c.phone)
}
