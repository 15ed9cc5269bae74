package models

import (
	"fmt"
	"slices"
	"time"

	deal "realestate/internal/deal/models"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/platform/collections"
)

// Client is the aggregate root for a buyer or tenant.
//
// Invariants:
//   - FirstName, LastName and ContactInfo are always present
//   - a completed deal appears at most once (by ID)
//   - booking references are unique and keep insertion order
type Client struct {
	id             domain.ClientID
	firstName      domain.Name
	lastName       domain.Name
	contact        domain.ContactInfo
	criteria       *SearchCriteria
	completedDeals []*deal.CompletedDeal
	bookings       *collections.OrderedSet[domain.BookingID]
	createdAt      time.Time
	updatedAt      time.Time
}

// NewClient registers a client. criteria may be nil.
func NewClient(firstName, lastName domain.Name, contact domain.ContactInfo, criteria *SearchCriteria, now time.Time) (*Client, error) {
	var v dErrors.Validation
	v.Check(!firstName.IsZero(), "first name is required")
	v.Check(!lastName.IsZero(), "last name is required")
	v.Check(!contact.IsZero(), "contact info is required")
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Client{
		id:        domain.NewClientID(),
		firstName: firstName,
		lastName:  lastName,
		contact:   contact,
		criteria:  criteria,
		bookings:  collections.NewOrderedSet[domain.BookingID](),
		createdAt: now,
	}, nil
}

func (c *Client) ID() domain.ClientID { return c.id }
func (c *Client) FirstName() domain.Name { return c.firstName }
func (c *Client) LastName() domain.Name { return c.lastName }
func (c *Client) ContactInfo() domain.ContactInfo { return c.contact }
func (c *Client) SearchCriteria() *SearchCriteria { return c.criteria }
func (c *Client) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last mutation time and whether any mutation happened.
func (c *Client) UpdatedAt() (time.Time, bool) {
	return c.updatedAt, !c.updatedAt.IsZero()
}

func (c *Client) FullName() string {
	return fmt.Sprintf("%s %s", c.firstName, c.lastName)
}

func (c *Client) UpdateContactInfo(contact domain.ContactInfo, now time.Time) error {
	if contact.IsZero() {
		return dErrors.Required("contact info")
	}
	c.contact = contact
	c.updatedAt = now
	return nil
}

// UpdateSearchCriteria replaces the preferences; nil clears them.
func (c *Client) UpdateSearchCriteria(criteria *SearchCriteria, now time.Time) {
	c.criteria = criteria
	c.updatedAt = now
}

// AddCompletedDeal records a finished sale. A deal already recorded is ignored.
func (c *Client) AddCompletedDeal(d *deal.CompletedDeal, now time.Time) error {
	if d == nil {
		return dErrors.Required("completed deal")
	}
	if c.completedDealIndex(d.ID()) >= 0 {
		return nil
	}
	c.completedDeals = append(c.completedDeals, d)
	c.updatedAt = now
	return nil
}

// RemoveCompletedDeal drops the deal with the given id and reports whether it
// was recorded.
func (c *Client) RemoveCompletedDeal(id domain.CompletedDealID, now time.Time) bool {
	i := c.completedDealIndex(id)
	if i < 0 {
		return false
	}
	c.completedDeals = slices.Delete(c.completedDeals, i, i+1)
	c.updatedAt = now
	return true
}

func (c *Client) completedDealIndex(id domain.CompletedDealID) int {
	return slices.IndexFunc(c.completedDeals, func(d *deal.CompletedDeal) bool { return d.ID() == id })
}

func (c *Client) CompletedDeals() []*deal.CompletedDeal {
	return slices.Clone(c.completedDeals)
}

// AddBookingID links a booking to the client. Known ids are ignored.
func (c *Client) AddBookingID(id domain.BookingID, now time.Time) error {
	if id.IsNil() {
		return dErrors.Required("booking id")
	}
	if c.bookings.Add(id) {
		c.updatedAt = now
	}
	return nil
}

// RemoveBookingID unlinks a booking and reports whether it was linked.
func (c *Client) RemoveBookingID(id domain.BookingID, now time.Time) bool {
	if !c.bookings.Remove(id) {
		return false
	}
	c.updatedAt = now
	return true
}

func (c *Client) HasBooking(id domain.BookingID) bool {
	return c.bookings.Contains(id)
}

// BookingIDs returns the linked bookings in the order they were added.
func (c *Client) BookingIDs() []domain.BookingID {
	return c.bookings.Items()
}

func (c *Client) String() string {
	return fmt.Sprintf("%s, %s, критерии: %s", c.FullName(), c.contact, c.criteria)
}
