package models

import (
	"fmt"
	"strings"

	dErrors "realestate/pkg/domain-errors"
)

// Address locates a property.
// Invariant: street, city and country are non-blank; house number and postal
// code are positive.
type Address struct {
	street      string
	city        string
	houseNumber int
	zipCode     int
	country     string
}

func NewAddress(street, city string, houseNumber, zipCode int, country string) (Address, error) {
	street, city, country = strings.TrimSpace(street), strings.TrimSpace(city), strings.TrimSpace(country)

	var v dErrors.Validation
	v.Check(street != "", "street cannot be empty")
	v.Check(city != "", "city cannot be empty")
	v.Check(houseNumber > 0, "house number must be positive")
	v.Check(zipCode > 0, "postal code must be positive")
	v.Check(country != "", "country cannot be empty")
	if err := v.Err(); err != nil {
		return Address{}, err
	}
	return Address{street: street, city: city, houseNumber: houseNumber, zipCode: zipCode, country: country}, nil
}

// MustAddress panics on invalid input. Use only in tests and fixtures.
func MustAddress(street, city string, houseNumber, zipCode int, country string) Address {
	a, err := NewAddress(street, city, houseNumber, zipCode, country)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) HouseNumber() int { return a.houseNumber }
func (a Address) ZipCode() int { return a.zipCode }
func (a Address) Country() string { return a.country }
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %d, %d, %s", a.street, a.city, a.houseNumber, a.zipCode, a.country)
}
