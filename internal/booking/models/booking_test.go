package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	agency "realestate/internal/agency/models"
	"realestate/internal/booking/models"
	client "realestate/internal/client/models"
	property "realestate/internal/property/models"
	"realestate/internal/sample"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

type BookingSuite struct {
	suite.Suite
	now      time.Time
	property *property.Property
	client   *client.Client
	agency   *agency.Agency
	period   domain.Period
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) SetupTest() {
	s.now = sample.FixedNow
	s.property = sample.NewProperty(s.now)
	s.client = sample.NewClient(s.now)
	s.agency = sample.NewAgency(s.now, s.property)
	s.period = sample.NewPeriod(s.now)
}

func (s *BookingSuite) newBooking() *models.Booking {
	b, err := models.NewBooking(s.client, s.property, s.agency, s.period, s.property.Price(), s.now)
	s.Require().NoError(err)
	return b
}

func (s *BookingSuite) TestConstructionInvariants() {
	s.Run("keeps identity references only", func() {
		b := s.newBooking()
		s.Equal(s.client.ID(), b.ClientID())
		s.Equal(s.property.ID(), b.PropertyID())
		s.Equal(s.agency.ID(), b.AgencyID())
		s.Equal(models.StatusPending, b.Status())
		s.False(b.ID().IsNil())
	})

	s.Run("collects every missing part", func() {
		_, err := models.NewBooking(nil, nil, nil, domain.Period{}, domain.Price{}, s.now)
		s.Require().Error(err)
		s.Equal([]string{
			"client is required",
			"property is required",
			"agency is required",
			"booking period is required",
			"total price is required",
		}, dErrors.Messages(err))
	})

	s.Run("price mismatch names both amounts", func() {
		_, err := models.NewBooking(s.client, s.property, s.agency, s.period, domain.MustPrice(4_900_000), s.now)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("total price must match the property price: got 4900000, want 5000000", err.Error())
	})

	s.Run("equal decimals with different scale match", func() {
		price, err := domain.ParsePrice("5000000.00")
		s.Require().NoError(err)
		_, err = models.NewBooking(s.client, s.property, s.agency, s.period, price, s.now)
		s.Require().NoError(err)
	})

	s.Run("does not touch the property status", func() {
		s.newBooking()
		s.Equal(property.StatusForSale, s.property.Status())
	})
}

func (s *BookingSuite) TestTransitions() {
	later := s.now.Add(time.Hour)

	s.Run("pending to confirmed to completed", func() {
		b := s.newBooking()
		s.Require().NoError(b.Confirm(later))
		s.Require().NoError(b.Complete(later))
		s.Equal(models.StatusCompleted, b.Status())
		at, updated := b.UpdatedAt()
		s.True(updated)
		s.Equal(later, at)
	})

	s.Run("pending cannot complete directly", func() {
		b := s.newBooking()
		err := b.Complete(later)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal("booking cannot move from pending to completed", err.Error())
		s.Equal(models.StatusPending, b.Status())
	})

	s.Run("pending and confirmed can be cancelled", func() {
		b := s.newBooking()
		s.Require().NoError(b.Cancel(later))

		c := s.newBooking()
		s.Require().NoError(c.Confirm(later))
		s.Require().NoError(c.Cancel(later))
		s.Equal(models.StatusCancelled, c.Status())
	})

	s.Run("terminal states reject every transition", func() {
		cancelled := s.newBooking()
		s.Require().NoError(cancelled.Cancel(later))

		completed := s.newBooking()
		s.Require().NoError(completed.Confirm(later))
		s.Require().NoError(completed.Complete(later))

		for _, b := range []*models.Booking{cancelled, completed} {
			s.True(b.Status().IsTerminal())
			s.True(dErrors.HasCode(b.Confirm(later), dErrors.CodeConflict))
			s.True(dErrors.HasCode(b.Complete(later), dErrors.CodeConflict))
			s.True(dErrors.HasCode(b.Cancel(later), dErrors.CodeConflict))
		}
	})

	s.Run("confirming twice is a conflict", func() {
		b := s.newBooking()
		s.Require().NoError(b.Confirm(later))
		s.Equal("booking cannot move from confirmed to confirmed", b.Confirm(later).Error())
	})
}
