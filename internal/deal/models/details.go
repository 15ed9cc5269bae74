package models

import (
	"fmt"
	"strings"
	"time"

	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// Details describes the commercial terms of a deal. Comments are optional.
type Details struct {
	date     time.Time
	amount   domain.Price
	dealType string
	comments string
}

// NewDetails validates deal terms. The deal date must not be after now.
func NewDetails(date time.Time, amount domain.Price, dealType, comments string, now time.Time) (Details, error) {
	dealType = strings.TrimSpace(dealType)

	var v dErrors.Validation
	v.Check(!date.IsZero(), "deal date is required")
	v.Check(!amount.IsZero(), "deal amount is required")
	v.Check(dealType != "", "deal type cannot be empty")
	v.Check(!date.After(now), "deal date cannot be in the future")
	if err := v.Err(); err != nil {
		return Details{}, err
	}
	return Details{date: date, amount: amount, dealType: dealType, comments: strings.TrimSpace(comments)}, nil
}

func (d Details) Date() time.Time { return d.date }
func (d Details) Amount() domain.Price { return d.amount }
func (d Details) Type() string { return d.dealType }
func (d Details) Comments() string { return d.comments }
func (d Details) IsZero() bool { return d.amount.IsZero() && d.dealType == "" }

func (d Details) Equal(o Details) bool {
	return d.date.Equal(o.date) && d.amount.Equal(o.amount) && d.dealType == o.dealType && d.comments == o.comments
}

func (d Details) String() string {
	return fmt.Sprintf("Сделка от %s: %s (%s)", d.date.Format("02.01.2006"), d.amount, d.dealType)
}
