package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// Deal is the aggregate root for a sale in progress.
//
// Invariants:
//   - ClientID and PropertyID are set; BookingID is optional
//   - Details are always present
//   - a document appears at most once
//
// Status changes are deliberately unguarded; callers decide when a deal may
// move on.
type Deal struct {
	id         domain.DealID
	clientID   domain.ClientID
	propertyID domain.PropertyID
	bookingID  *domain.BookingID
	details    Details
	documents  []*Document
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDeal(clientID domain.ClientID, propertyID domain.PropertyID, bookingID *domain.BookingID, details Details, now time.Time) (*Deal, error) {
	var v dErrors.Validation
	v.Check(!clientID.IsNil(), "client id is required")
	v.Check(!propertyID.IsNil(), "property id is required")
	v.Check(!details.IsZero(), "deal details are required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	d := &Deal{
		id:         domain.NewDealID(),
		clientID:   clientID,
		propertyID: propertyID,
		details:    details,
		status:     StatusCreated,
		createdAt:  now,
	}
	if bookingID != nil && !bookingID.IsNil() {
		b := *bookingID
		d.bookingID = &b
	}
	return d, nil
}

func (d *Deal) ID() domain.DealID { return d.id }
func (d *Deal) ClientID() domain.ClientID { return d.clientID }
func (d *Deal) PropertyID() domain.PropertyID { return d.propertyID }
func (d *Deal) Details() Details { return d.details }
func (d *Deal) Status() Status { return d.status }
func (d *Deal) CreatedAt() time.Time { return d.createdAt }

// BookingID returns the booking the deal came from, if any.
func (d *Deal) BookingID() (domain.BookingID, bool) {
	if d.bookingID == nil {
		return domain.BookingID{}, false
	}
	return *d.bookingID, true
}

// UpdatedAt returns the last mutation time and whether any mutation happened.
func (d *Deal) UpdatedAt() (time.Time, bool) {
	return d.updatedAt, !d.updatedAt.IsZero()
}

// Documents returns the attached documents in the order they were added.
func (d *Deal) Documents() []*Document {
	return slices.Clone(d.documents)
}

// AddDocument attaches doc. Attaching the same document twice is a no-op.
func (d *Deal) AddDocument(doc *Document, now time.Time) error {
	if doc == nil {
		return dErrors.Required("document")
	}
	if d.documentIndex(doc.ID()) >= 0 {
		return nil
	}
	d.documents = append(d.documents, doc)
	d.updatedAt = now
	return nil
}

// RemoveDocument detaches the document with the given id and reports whether
// it was attached.
func (d *Deal) RemoveDocument(id uuid.UUID, now time.Time) bool {
	i := d.documentIndex(id)
	if i < 0 {
		return false
	}
	d.documents = slices.Delete(d.documents, i, i+1)
	d.updatedAt = now
	return true
}

func (d *Deal) documentIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.documents, func(doc *Document) bool { return doc.ID() == id })
}

func (d *Deal) Confirm(now time.Time) {
	d.setStatus(StatusConfirmed, now)
}

func (d *Deal) Complete(now time.Time) {
	d.setStatus(StatusCompleted, now)
}

func (d *Deal) Cancel(now time.Time) {
	d.setStatus(StatusCancelled, now)
}

func (d *Deal) setStatus(s Status, now time.Time) {
	d.status = s
	d.updatedAt = now
}

func (d *Deal) String() string {
	return fmt.Sprintf("Deal %s [%s]: %s", d.id, d.status, d.details)
}
