package models

import (
	"fmt"
	"strings"
	"time"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// CompletedDeal is the immutable record of a finished sale kept on the client.
type CompletedDeal struct {
	id         domain.CompletedDealID
	clientID   domain.ClientID
	propertyID domain.PropertyID
	date       time.Time
	amount     domain.Price
	dealType   string
	createdAt  time.Time
}

func NewCompletedDeal(
	clientID domain.ClientID,
	propertyID domain.PropertyID,
	date time.Time,
	amount domain.Price,
	dealType string,
	now time.Time,
) (*CompletedDeal, error) {
	dealType = strings.TrimSpace(dealType)

	var v dErrors.Validation
	v.Check(!clientID.IsNil(), "client id is required")
	v.Check(!propertyID.IsNil(), "property id is required")
	v.Check(!amount.IsZero(), "deal amount is required")
	v.Check(dealType != "", "deal type cannot be empty")
	v.Check(!date.After(now), "deal date cannot be in the future")
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &CompletedDeal{
		id:         domain.NewCompletedDealID(),
		clientID:   clientID,
		propertyID: propertyID,
		date:       date,
		amount:     amount,
		dealType:   dealType,
		createdAt:  now,
	}, nil
}

// CompletedDealFrom records a closed deal using its own terms.
func CompletedDealFrom(d *Deal, now time.Time) (*CompletedDeal, error) {
	if d == nil {
		return nil, dErrors.Required("deal")
	}
	return NewCompletedDeal(d.clientID, d.propertyID, d.details.Date(), d.details.Amount(), d.details.Type(), now)
}

func (c *CompletedDeal) ID() domain.CompletedDealID { return c.id }
func (c *CompletedDeal) ClientID() domain.ClientID { return c.clientID }
func (c *CompletedDeal) PropertyID() domain.PropertyID { return c.propertyID }
func (c *CompletedDeal) Date() time.Time { return c.date }
func (c *CompletedDeal) Amount() domain.Price { return c.amount }
func (c *CompletedDeal) Type() string { return c.dealType }
func (c *CompletedDeal) CreatedAt() time.Time { return c.createdAt }

func (c *CompletedDeal) String() string {
	return fmt.Sprintf("%s %s: %s", c.date.Format("02.01.2006"), c.dealType, c.amount)
}
