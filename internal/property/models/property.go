package models

import (
	"fmt"
	"time"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// Property is the aggregate root for a listed real-estate object.
//
// Invariants:
//   - Address, Price, Description and Details are always present
//   - the ownership history is never empty
//   - Status transitions: for_sale ↔ reserved, for_sale|reserved → sold; sold is terminal
//   - CreatedAt is immutable after construction
//   - UpdatedAt is zero until the first successful mutation
type Property struct {
	id          domain.PropertyID
	address     Address
	price       domain.Price
	description Description
	details     PropertyDetails
	status      Status
	reservedBy  domain.BookingID
	history     *OwnershipHistory
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProperty lists a property for sale with its first known owner.
// Nested value objects are expected to come from their own factories; only
// their presence is checked here.
func NewProperty(
	address Address,
	price domain.Price,
	description Description,
	details PropertyDetails,
	firstOwner *OwnershipRecord,
	now time.Time,
) (*Property, error) {
	var v dErrors.Validation
	v.Check(!address.IsZero(), "address is required")
	v.Check(!price.IsZero(), "price is required")
	v.Check(!description.IsZero(), "description is required")
	v.Check(!details.IsZero(), "property details are required")
	v.Check(firstOwner != nil, "first owner is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	history, err := NewOwnershipHistory(firstOwner)
	if err != nil {
		return nil, err
	}
	return &Property{
		id:          domain.NewPropertyID(),
		address:     address,
		price:       price,
		description: description,
		details:     details,
		status:      StatusForSale,
		history:     history,
		createdAt:   now,
	}, nil
}

func (p *Property) ID() domain.PropertyID { return p.id }
func (p *Property) Address() Address { return p.address }
func (p *Property) Price() domain.Price { return p.price }
func (p *Property) Description() Description { return p.description }
func (p *Property) Details() PropertyDetails { return p.details }
func (p *Property) Status() Status { return p.status }
func (p *Property) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation time and whether any mutation happened.
func (p *Property) UpdatedAt() (time.Time, bool) {
	return p.updatedAt, !p.updatedAt.IsZero()
}

func (p *Property) IsForSale() bool {
	return p.status == StatusForSale
}

func (p *Property) UpdatePrice(price domain.Price, now time.Time) error {
	if price.IsZero() {
		return dErrors.Required("price")
	}
	p.price = price
	p.updatedAt = now
	return nil
}

func (p *Property) UpdateDescription(description Description, now time.Time) error {
	if description.IsZero() {
		return dErrors.Required("description")
	}
	p.description = description
	p.updatedAt = now
	return nil
}

func (p *Property) AddOwnershipRecord(r *OwnershipRecord, now time.Time) error {
	if err := p.history.AddRecord(r); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

// RemoveOwnershipRecord drops a record unless it is the last one.
func (p *Property) RemoveOwnershipRecord(r *OwnershipRecord, now time.Time) error {
	if r == nil {
		return dErrors.Required("ownership record")
	}
	if !p.history.Contains(r) {
		return dErrors.New(dErrors.CodeNotFound, "ownership record not found")
	}
	if p.history.Len() == 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, "ownership history cannot be empty")
	}
	if _, err := p.history.RemoveRecord(r); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

// TransferOwnership closes the current owner's record at the new record's
// start date and appends the new record. The new record must start strictly
// after the current one.
func (p *Property) TransferOwnership(next *OwnershipRecord, now time.Time) error {
	if next == nil {
		return dErrors.Required("ownership record")
	}
	current := p.history.current()
	if current != nil && !next.StartDate().After(current.StartDate()) {
		return dErrors.New(dErrors.CodeInvariantViolation, "new owner must start after the current owner")
	}
	if current != nil && current.IsCurrentOwner() {
		if err := current.SetEndDate(next.StartDate()); err != nil {
			return err
		}
	}
	return p.AddOwnershipRecord(next, now)
}

// CurrentOwner returns a copy of the record with the latest start date.
func (p *Property) CurrentOwner() (*OwnershipRecord, bool) {
	return p.history.CurrentOwner()
}

// OwnershipHistory returns copies of the records in chronological order.
// Changing them does not affect the property.
func (p *Property) OwnershipHistory() []*OwnershipRecord {
	return p.history.Records()
}

// CanTransitionTo checks whether the listing may move to next.
func (p *Property) CanTransitionTo(next Status) error {
	if !p.status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeConflict,
			fmt.Sprintf("property cannot move from %s to %s", p.status, next))
	}
	return nil
}

func (p *Property) transition(next Status, now time.Time) error {
	if err := p.CanTransitionTo(next); err != nil {
		return err
	}
	p.status = next
	p.updatedAt = now
	return nil
}

// Reserve takes the property off the market for the given booking.
func (p *Property) Reserve(booking domain.BookingID, now time.Time) error {
	if booking.IsNil() {
		return dErrors.Required("booking id")
	}
	if err := p.transition(StatusReserved, now); err != nil {
		return err
	}
	p.reservedBy = booking
	return nil
}

// Release puts a reserved property back on the market.
func (p *Property) Release(now time.Time) error {
	if err := p.transition(StatusForSale, now); err != nil {
		return err
	}
	p.reservedBy = domain.BookingID{}
	return nil
}

// MarkSold closes the listing for good.
func (p *Property) MarkSold(now time.Time) error {
	if err := p.transition(StatusSold, now); err != nil {
		return err
	}
	p.reservedBy = domain.BookingID{}
	return nil
}

// ReservedBy returns the booking holding the reservation while the property
// is reserved.
func (p *Property) ReservedBy() (domain.BookingID, bool) {
	if p.status != StatusReserved {
		return domain.BookingID{}, false
	}
	return p.reservedBy, true
}

// CheckHolder returns a Conflict when the property is reserved by a booking
// other than booking. A nil booking only passes while nothing is reserved.
func (p *Property) CheckHolder(booking *domain.BookingID) error {
	held, ok := p.ReservedBy()
	if !ok {
		return nil
	}
	if booking == nil || *booking != held {
		return dErrors.New(dErrors.CodeConflict, "property is reserved by booking "+held.String())
	}
	return nil
}

func (p *Property) String() string {
	return fmt.Sprintf("Id: %s, Адрес: %s, Цена: %s, Статус: %s, Площадь: %s, Комнат: %d, Этаж: %s",
		p.id, p.address, p.price, p.status.DisplayName(), p.details.Area(), p.details.Rooms().Value(), p.details.Floor())
}
