package models

import (
	"fmt"
	"time"

	agency "realestate/internal/agency/models"
	client "realestate/internal/client/models"
	property "realestate/internal/property/models"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// Booking reserves a property for a client through an agency.
//
// Invariants:
//   - Client, Property and Agency are referenced by ID only
//   - TotalPrice equals the property price at booking time
//   - Status transitions: pending → confirmed → completed; pending|confirmed → cancelled
//   - completed and cancelled are terminal
//
// Property availability is not touched here; the booking service reserves and
// releases the property around these transitions.
type Booking struct {
	id         domain.BookingID
	clientID   domain.ClientID
	propertyID domain.PropertyID
	agencyID   domain.AgencyID
	period     domain.Period
	totalPrice domain.Price
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking checks that every party is present and that the quoted price
// matches the listing exactly.
func NewBooking(
	c *client.Client,
	p *property.Property,
	a *agency.Agency,
	period domain.Period,
	totalPrice domain.Price,
	now time.Time,
) (*Booking, error) {
	var v dErrors.Validation
	v.Check(c != nil, "client is required")
	v.Check(p != nil, "property is required")
	v.Check(a != nil, "agency is required")
	v.Check(!period.IsZero(), "booking period is required")
	v.Check(!totalPrice.IsZero(), "total price is required")
	if p != nil && !totalPrice.IsZero() && !totalPrice.Equal(p.Price()) {
		v.Add(fmt.Sprintf("total price must match the property price: got %s, want %s",
			totalPrice.Value(), p.Price().Value()))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Booking{
		id:         domain.NewBookingID(),
		clientID:   c.ID(),
		propertyID: p.ID(),
		agencyID:   a.ID(),
		period:     period,
		totalPrice: totalPrice,
		status:     StatusPending,
		createdAt:  now,
	}, nil
}

func (b *Booking) ID() domain.BookingID { return b.id }
func (b *Booking) ClientID() domain.ClientID { return b.clientID }
func (b *Booking) PropertyID() domain.PropertyID { return b.propertyID }
func (b *Booking) AgencyID() domain.AgencyID { return b.agencyID }
func (b *Booking) Period() domain.Period { return b.period }
func (b *Booking) TotalPrice() domain.Price { return b.totalPrice }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last mutation time and whether any mutation happened.
func (b *Booking) UpdatedAt() (time.Time, bool) {
	return b.updatedAt, !b.updatedAt.IsZero()
}

func (b *Booking) canMoveTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeConflict,
			fmt.Sprintf("booking cannot move from %s to %s", b.status, next))
	}
	return nil
}

func (b *Booking) apply(next Status, now time.Time) {
	b.status = next
	b.updatedAt = now
}

// CanConfirm checks if the booking can move to confirmed.
// Use with ApplyConfirm when side effects must be validated first.
func (b *Booking) CanConfirm() error { return b.canMoveTo(StatusConfirmed) }

// ApplyConfirm moves the booking to confirmed. Call CanConfirm first.
func (b *Booking) ApplyConfirm(now time.Time) { b.apply(StatusConfirmed, now) }

// Confirm validates and applies confirmation in one call.
func (b *Booking) Confirm(now time.Time) error {
	if err := b.CanConfirm(); err != nil {
		return err
	}
	b.ApplyConfirm(now)
	return nil
}

// CanComplete checks if the booking can move to completed.
func (b *Booking) CanComplete() error { return b.canMoveTo(StatusCompleted) }

// ApplyComplete moves the booking to completed. Call CanComplete first.
func (b *Booking) ApplyComplete(now time.Time) { b.apply(StatusCompleted, now) }

// Complete validates and applies completion in one call.
func (b *Booking) Complete(now time.Time) error {
	if err := b.CanComplete(); err != nil {
		return err
	}
	b.ApplyComplete(now)
	return nil
}

// CanCancel checks if the booking can move to cancelled.
func (b *Booking) CanCancel() error { return b.canMoveTo(StatusCancelled) }

// ApplyCancel moves the booking to cancelled. Call CanCancel first.
func (b *Booking) ApplyCancel(now time.Time) { b.apply(StatusCancelled, now) }

// Cancel validates and applies cancellation in one call.
func (b *Booking) Cancel(now time.Time) error {
	if err := b.CanCancel(); err != nil {
		return err
	}
	b.ApplyCancel(now)
	return nil
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking %s [%s] %s, %s", b.id, b.status, b.period, b.totalPrice)
}
