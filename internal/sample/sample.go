// Package sample builds a ready-made listing, client and agency for the demo
// driver and the tests.
package sample

import (
	"time"

	agency "realestate/internal/agency/models"
	client "realestate/internal/client/models"
	property "realestate/internal/property/models"
	"realestate/pkg/domain"
)

// FixedNow is the reference instant the tests build samples at.
var FixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// ListingPrice is the price of the property returned by NewProperty.
const ListingPrice = 5_000_000

// NewProperty returns the Lenina 10 apartment listed for sale, owned by
// "Ivanov I.I." since now.
func NewProperty(now time.Time) *property.Property {
	p, err := property.NewProperty(
		property.MustAddress("Lenina 10", "Moscow", 10, 129903, "Russia"),
		domain.MustPrice(ListingPrice),
		property.MustDescription("Трёхкомнатная квартира у метро"),
		property.MustPropertyDetails(property.PropertyDetailsInput{
			Area: 85, Rooms: 3, Floor: 5, TotalFloors: 9, Type: property.PropertyTypeApartment,
			Balcony: true, Parking: true,
		}),
		property.MustOwnershipRecord("Ivanov I.I.", now, "Purchase", nil),
		now,
	)
	if err != nil {
		panic(err)
	}
	return p
}

// NewClient returns a client without search criteria.
func NewClient(now time.Time) *client.Client {
	c, err := client.NewClient(
		domain.MustName("Petr"),
		domain.MustName("Petrov"),
		domain.MustContactInfo("petrov@example.com", "+79161234567"),
		nil,
		now,
	)
	if err != nil {
		panic(err)
	}
	return c
}

// NewAgency returns an agency holding the given properties.
func NewAgency(now time.Time, holds ...*property.Property) *agency.Agency {
	a, err := agency.NewAgency(
		domain.MustName("Moscow Realty"),
		domain.MustContactInfo("office@realty.ru", "+74951234567"),
		agency.MustLicenseNumber("LIC-77-0001"),
		now,
	)
	if err != nil {
		panic(err)
	}
	for _, p := range holds {
		if err := a.AddProperty(p.ID(), now); err != nil {
			panic(err)
		}
	}
	return a
}

// NewPeriod returns a two-week viewing window starting at now.
func NewPeriod(now time.Time) domain.Period {
	return domain.MustPeriod(now, now.AddDate(0, 0, 14))
}
