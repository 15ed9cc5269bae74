package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

const ownershipDateLayout = "02.01.2006"

// OwnershipRecord is one entry in a property's chain of title.
//
// Invariants:
//   - OwnerName is a valid Name
//   - StartDate is set
//   - Reason is non-blank
//   - EndDate, when set, is not before StartDate
type OwnershipRecord struct {
	ownerName domain.Name
	startDate time.Time
	endDate   *time.Time
	reason    string
}

// NewOwnershipRecord validates a title entry. A nil end means the owner still
// holds the property.
func NewOwnershipRecord(ownerName string, start time.Time, reason string, end *time.Time) (*OwnershipRecord, error) {
	var v dErrors.Validation

	name, err := domain.ParseName(ownerName)
	v.Merge(err)
	v.Check(!start.IsZero(), "start date is required")
	reason = strings.TrimSpace(reason)
	v.Check(reason != "", "ownership reason cannot be empty")
	if end != nil && !start.IsZero() {
		v.Check(!end.Before(start), "end date must not be before start date")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	r := &OwnershipRecord{ownerName: name, startDate: start, reason: reason}
	if end != nil {
		e := *end
		r.endDate = &e
	}
	return r, nil
}

// MustOwnershipRecord panics on invalid input. Use only in tests and fixtures.
func MustOwnershipRecord(ownerName string, start time.Time, reason string, end *time.Time) *OwnershipRecord {
	r, err := NewOwnershipRecord(ownerName, start, reason, end)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *OwnershipRecord) OwnerName() domain.Name { return r.ownerName }
func (r *OwnershipRecord) StartDate() time.Time { return r.startDate }
func (r *OwnershipRecord) Reason() string { return r.reason }

// EndDate returns the end of ownership and whether it is set.
func (r *OwnershipRecord) EndDate() (time.Time, bool) {
	if r.endDate == nil {
		return time.Time{}, false
	}
	return *r.endDate, true
}

// IsCurrentOwner reports whether the record is still open.
func (r *OwnershipRecord) IsCurrentOwner() bool {
	return r.endDate == nil
}

// SetEndDate closes the record.
func (r *OwnershipRecord) SetEndDate(end time.Time) error {
	if end.IsZero() {
		return dErrors.Required("end date")
	}
	if end.Before(r.startDate) {
		return dErrors.New(dErrors.CodeInvariantViolation, "end date must not be before start date")
	}
	r.endDate = &end
	return nil
}

// clone returns a detached copy so callers cannot reach a record held by a history.
func (r *OwnershipRecord) clone() *OwnershipRecord {
	c := *r
	if r.endDate != nil {
		end := *r.endDate
		c.endDate = &end
	}
	return &c
}

// Equal compares records by value.
func (r *OwnershipRecord) Equal(o *OwnershipRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !r.ownerName.Equal(o.ownerName) || !r.startDate.Equal(o.startDate) || r.reason != o.reason {
		return false
	}
	if (r.endDate == nil) != (o.endDate == nil) {
		return false
	}
	return r.endDate == nil || r.endDate.Equal(*o.endDate)
}

func (r *OwnershipRecord) String() string {
	end := "н.в."
	if r.endDate != nil {
		end = r.endDate.Format(ownershipDateLayout)
	}
	return fmt.Sprintf("%s: %s - %s (%s)", r.ownerName, r.startDate.Format(ownershipDateLayout), end, r.reason)
}

// OwnershipHistory keeps title records ordered by start date, oldest first.
// Records with the same start date keep the order they were added in.
type OwnershipHistory struct {
	records []*OwnershipRecord
}

// NewOwnershipHistory builds a history from the given records.
func NewOwnershipHistory(records ...*OwnershipRecord) (*OwnershipHistory, error) {
	h := &OwnershipHistory{}
	for _, r := range records {
		if err := h.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// AddRecord appends a copy of r and restores start-date order.
func (h *OwnershipHistory) AddRecord(r *OwnershipRecord) error {
	if r == nil {
		return dErrors.Required("ownership record")
	}
	h.records = append(h.records, r.clone())
	slices.SortStableFunc(h.records, func(a, b *OwnershipRecord) int {
		return a.startDate.Compare(b.startDate)
	})
	return nil
}

// RemoveRecord drops the first record equal to r and reports whether one was found.
func (h *OwnershipHistory) RemoveRecord(r *OwnershipRecord) (bool, error) {
	if r == nil {
		return false, dErrors.Required("ownership record")
	}
	i := slices.IndexFunc(h.records, r.Equal)
	if i < 0 {
		return false, nil
	}
	h.records = slices.Delete(h.records, i, i+1)
	return true, nil
}

// CurrentOwner returns a copy of the record with the latest start date. The
// end date is not consulted: a closed record that started last still wins. On
// equal start dates the record added first wins.
func (h *OwnershipHistory) CurrentOwner() (*OwnershipRecord, bool) {
	r := h.current()
	if r == nil {
		return nil, false
	}
	return r.clone(), true
}

// current returns the held record CurrentOwner describes, or nil.
func (h *OwnershipHistory) current() *OwnershipRecord {
	if len(h.records) == 0 {
		return nil
	}
	i := len(h.records) - 1
	latest := h.records[i].startDate
	for i > 0 && h.records[i-1].startDate.Equal(latest) {
		i--
	}
	return h.records[i]
}

// Records returns copies of the records in chronological order.
func (h *OwnershipHistory) Records() []*OwnershipRecord {
	out := make([]*OwnershipRecord, len(h.records))
	for i, r := range h.records {
		out[i] = r.clone()
	}
	return out
}

func (h *OwnershipHistory) Len() int {
	return len(h.records)
}

// Contains reports whether a record equal to r is present.
func (h *OwnershipHistory) Contains(r *OwnershipRecord) bool {
	return slices.ContainsFunc(h.records, r.Equal)
}
