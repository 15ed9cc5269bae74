package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"realestate/internal/client/models"
	deal "realestate/internal/deal/models"
	property "realestate/internal/property/models"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

type ClientSuite struct {
	suite.Suite
	now     time.Time
	first   domain.Name
	last    domain.Name
	contact domain.ContactInfo
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.now = time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	s.first = domain.MustName("Иван")
	s.last = domain.MustName("Петров")
	s.contact = domain.MustContactInfo("ivan@mail.ru", "89161234567")
}

func (s *ClientSuite) newClient() *models.Client {
	c, err := models.NewClient(s.first, s.last, s.contact, nil, s.now)
	s.Require().NoError(err)
	return c
}

func ptr[T any](v T) *T { return &v }

func (s *ClientSuite) TestSearchCriteria() {
	s.Run("no input is empty", func() {
		c, err := models.NewSearchCriteria(models.SearchCriteriaInput{})
		s.Require().NoError(err)
		s.True(c.IsEmpty())
		s.Equal("No criteria", c.String())
		_, ok := c.Area()
		s.False(ok)
	})

	s.Run("validates only present fields", func() {
		c, err := models.NewSearchCriteria(models.SearchCriteriaInput{
			Rooms:   ptr(2),
			Type:    ptr(property.PropertyTypeApartment),
			Parking: ptr(true),
		})
		s.Require().NoError(err)
		s.False(c.IsEmpty())
		rooms, ok := c.Rooms()
		s.True(ok)
		s.Equal(2, rooms.Value())
		s.Equal("Rooms: 2, Type: Квартира, Parking: true", c.String())
	})

	s.Run("collects failures of present fields", func() {
		_, err := models.NewSearchCriteria(models.SearchCriteriaInput{
			Area:        ptr(0),
			Floor:       ptr(12),
			TotalFloors: ptr(9),
			Type:        ptr(property.PropertyType("castle")),
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Len(dErrors.Messages(err), 3)
		s.Contains(err.Error(), "floor (12) must not exceed total floors (9)")
	})

	s.Run("blank heating preference becomes not specified", func() {
		c, err := models.NewSearchCriteria(models.SearchCriteriaInput{Heating: ptr("")})
		s.Require().NoError(err)
		h, ok := c.Heating()
		s.True(ok)
		s.Equal(property.NotSpecified, h.Value())
	})

	s.Run("equality by value", func() {
		a, _ := models.NewSearchCriteria(models.SearchCriteriaInput{Area: ptr(60), Condition: ptr("хорошее")})
		b, _ := models.NewSearchCriteria(models.SearchCriteriaInput{Area: ptr(60), Condition: ptr("Хорошее")})
		c, _ := models.NewSearchCriteria(models.SearchCriteriaInput{Area: ptr(61)})
		empty, _ := models.NewSearchCriteria(models.SearchCriteriaInput{})

		s.True(a.Equal(b))
		s.False(a.Equal(c))
		s.True(empty.Equal(nil))
		s.False(a.Equal(nil))
	})
}

func (s *ClientSuite) TestConstructionInvariants() {
	_, err := models.NewClient(domain.Name{}, domain.Name{}, domain.ContactInfo{}, nil, s.now)
	s.Require().Error(err)
	s.Equal("first name is required; last name is required; contact info is required", err.Error())

	c := s.newClient()
	s.Equal("Иван Петров", c.FullName())
	s.Nil(c.SearchCriteria())
	s.Contains(c.String(), "No criteria")
}

func (s *ClientSuite) TestUpdates() {
	s.Run("contact info is required", func() {
		c := s.newClient()
		err := c.UpdateContactInfo(domain.ContactInfo{}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeRequiredArgument))
		_, updated := c.UpdatedAt()
		s.False(updated)
	})

	s.Run("search criteria can be replaced and cleared", func() {
		c := s.newClient()
		criteria, _ := models.NewSearchCriteria(models.SearchCriteriaInput{Rooms: ptr(1)})
		c.UpdateSearchCriteria(criteria, s.now)
		s.Same(criteria, c.SearchCriteria())
		c.UpdateSearchCriteria(nil, s.now)
		s.Nil(c.SearchCriteria())
	})
}

func (s *ClientSuite) TestBookingIDs() {
	c := s.newClient()
	a, b := domain.NewBookingID(), domain.NewBookingID()

	s.Require().NoError(c.AddBookingID(a, s.now))
	s.Require().NoError(c.AddBookingID(b, s.now))
	s.Require().NoError(c.AddBookingID(a, s.now))
	s.Equal([]domain.BookingID{a, b}, c.BookingIDs())

	s.True(c.RemoveBookingID(a, s.now))
	s.False(c.RemoveBookingID(a, s.now))
	s.Equal([]domain.BookingID{b}, c.BookingIDs())

	err := c.AddBookingID(domain.BookingID{}, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeRequiredArgument))
}

func (s *ClientSuite) TestCompletedDeals() {
	c := s.newClient()
	completed, err := deal.NewCompletedDeal(c.ID(), domain.NewPropertyID(), s.now, domain.MustPrice(3_000_000), "Купля-продажа", s.now)
	s.Require().NoError(err)

	s.Require().NoError(c.AddCompletedDeal(completed, s.now))
	s.Require().NoError(c.AddCompletedDeal(completed, s.now))
	s.Len(c.CompletedDeals(), 1)

	s.True(dErrors.HasCode(c.AddCompletedDeal(nil, s.now), dErrors.CodeRequiredArgument))

	s.True(c.RemoveCompletedDeal(completed.ID(), s.now))
	s.Empty(c.CompletedDeals())
	s.False(c.RemoveCompletedDeal(completed.ID(), s.now))
}
