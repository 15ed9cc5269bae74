package models

import (
	"fmt"
	"time"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/platform/collections"
)

// Agency is the aggregate root for a brokerage holding property listings.
//
// Invariants:
//   - Name, ContactInfo and License are always present
//   - a property is held at most once; references are by PropertyID only
//   - CreatedAt is immutable after construction
type Agency struct {
	id         domain.AgencyID
	name       domain.Name
	contact    domain.ContactInfo
	license    LicenseNumber
	properties *collections.OrderedSet[domain.PropertyID]
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAgency(name domain.Name, contact domain.ContactInfo, license LicenseNumber, now time.Time) (*Agency, error) {
	var v dErrors.Validation
	v.Check(!name.IsZero(), "agency name is required")
	v.Check(!contact.IsZero(), "contact info is required")
	v.Check(!license.IsZero(), "license number is required")
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Agency{
		id:         domain.NewAgencyID(),
		name:       name,
		contact:    contact,
		license:    license,
		properties: collections.NewOrderedSet[domain.PropertyID](),
		createdAt:  now,
	}, nil
}

func (a *Agency) ID() domain.AgencyID { return a.id }
func (a *Agency) Name() domain.Name { return a.name }
func (a *Agency) ContactInfo() domain.ContactInfo { return a.contact }
func (a *Agency) License() LicenseNumber { return a.license }
func (a *Agency) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last mutation time and whether any mutation happened.
func (a *Agency) UpdatedAt() (time.Time, bool) {
	return a.updatedAt, !a.updatedAt.IsZero()
}

// AddProperty starts holding a listing. Adding one already held is a no-op.
func (a *Agency) AddProperty(id domain.PropertyID, now time.Time) error {
	if id.IsNil() {
		return dErrors.Required("property id")
	}
	if a.properties.Add(id) {
		a.updatedAt = now
	}
	return nil
}

// RemoveProperty stops holding a listing.
func (a *Agency) RemoveProperty(id domain.PropertyID, now time.Time) error {
	if id.IsNil() {
		return dErrors.Required("property id")
	}
	if !a.properties.Remove(id) {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("agency does not hold property %s", id))
	}
	a.updatedAt = now
	return nil
}

func (a *Agency) HasProperty(id domain.PropertyID) bool {
	return a.properties.Contains(id)
}

// Properties returns the held listings in the order they were added.
func (a *Agency) Properties() []domain.PropertyID {
	return a.properties.Items()
}

func (a *Agency) UpdateContactInfo(contact domain.ContactInfo, now time.Time) error {
	if contact.IsZero() {
		return dErrors.Required("contact info")
	}
	a.contact = contact
	a.updatedAt = now
	return nil
}

func (a *Agency) String() string {
	return fmt.Sprintf("%s (лицензия %s), %s, объектов: %d", a.name, a.license, a.contact, a.properties.Len())
}
