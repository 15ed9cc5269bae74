package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"realestate/internal/property/models"
	dErrors "realestate/pkg/domain-errors"
)

type PrimitivesSuite struct {
	suite.Suite
}

func TestPrimitivesSuite(t *testing.T) {
	suite.Run(t, new(PrimitivesSuite))
}

func (s *PrimitivesSuite) TestArea() {
	s.Run("accepts the full range", func() {
		for _, v := range []int{1, 85, 1_000_000} {
			a, err := models.NewArea(v)
			s.Require().NoError(err)
			s.Equal(v, a.Value())
		}
	})

	s.Run("rejects out-of-range values", func() {
		for _, v := range []int{0, -1, 1_000_001} {
			_, err := models.NewArea(v)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		}
	})

	s.Run("renders square metres", func() {
		s.Equal("85 м²", mustArea(85).String())
	})
}

func mustArea(v int) models.Area {
	a, err := models.NewArea(v)
	if err != nil {
		panic(err)
	}
	return a
}

func (s *PrimitivesSuite) TestNumberOfRooms() {
	s.Run("zero rooms is a valid studio", func() {
		r, err := models.NewNumberOfRooms(0)
		s.Require().NoError(err)
		s.False(r.IsZero())
		s.Equal(0, r.Value())
	})

	s.Run("rejects negatives and more than 100", func() {
		for _, v := range []int{-1, 101} {
			_, err := models.NewNumberOfRooms(v)
			s.Require().Error(err)
		}
	})
}

func (s *PrimitivesSuite) TestTotalFloors() {
	for _, v := range []int{0, 201} {
		_, err := models.NewTotalFloors(v)
		s.Require().Error(err)
	}
	t, err := models.NewTotalFloors(200)
	s.Require().NoError(err)
	s.Equal(200, t.Value())
}

func (s *PrimitivesSuite) TestFloorInBuilding() {
	tests := []struct {
		name        string
		floor       int
		totalFloors int
		wantErr     bool
	}{
		{"above total floors", 15, 10, true},
		{"basement ignores building height", -1, 10, false},
		{"lowest basement", -10, 10, false},
		{"below lowest basement", -11, 10, true},
		{"ground floor", 0, 1, false},
		{"top floor", 10, 10, false},
		{"absolute maximum", 200, 200, false},
		{"over absolute maximum", 201, 250, true},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			f, err := models.NewFloorInBuilding(tt.floor, tt.totalFloors)
			if tt.wantErr {
				s.Require().Error(err)
				s.True(dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.floor, f.Value())
		})
	}

	s.Run("names both numbers when above the building", func() {
		_, err := models.NewFloorInBuilding(15, 10)
		s.Require().Error(err)
		s.Equal("floor (15) must not exceed total floors (10)", err.Error())
	})

	s.Run("floor without a building is bounded only by the absolute range", func() {
		_, err := models.NewFloor(150)
		s.Require().NoError(err)
		_, err = models.NewFloor(201)
		s.Require().Error(err)
	})
}

func (s *PrimitivesSuite) TestFloorRendering() {
	basement, _ := models.NewFloor(-2)
	ground, _ := models.NewFloor(0)
	fifth, _ := models.NewFloor(5)

	s.True(basement.IsBasement())
	s.Equal("2 подвальный этаж", basement.String())
	s.Equal("Цокольный этаж", ground.String())
	s.Equal("5 этаж", fifth.String())
}

func (s *PrimitivesSuite) TestFreeText() {
	s.Run("blank heating maps to the not-specified default", func() {
		h, err := models.NewHeatingType("   ")
		s.Require().NoError(err)
		s.Equal(models.NotSpecified, h.Value())
		s.True(h.IsKnown())
	})

	s.Run("custom values are accepted but not known", func() {
		c, err := models.NewPropertyCondition("Дизайнерский ремонт")
		s.Require().NoError(err)
		s.False(c.IsKnown())
	})

	s.Run("known values match ignoring case", func() {
		h, err := models.NewHeatingType("газовое")
		s.Require().NoError(err)
		s.True(h.IsKnown())
	})

	s.Run("rejects more than 100 characters", func() {
		_, err := models.NewHeatingType(strings.Repeat("ж", 101))
		s.Require().Error(err)
		_, err = models.NewPropertyCondition(strings.Repeat("ж", 101))
		s.Require().Error(err)
	})
}

func (s *PrimitivesSuite) TestDescription() {
	d, err := models.NewDescription("  Светлая квартира  ")
	s.Require().NoError(err)
	s.Equal("Светлая квартира", d.String())

	_, err = models.NewDescription(" ")
	s.Require().Error(err)
	s.Equal("description cannot be empty", err.Error())

	_, err = models.NewDescription(strings.Repeat("a", 1001))
	s.Require().Error(err)
}

func (s *PrimitivesSuite) TestAddress() {
	s.Run("renders all parts", func() {
		a, err := models.NewAddress("Lenina 10", "Moscow", 10, 129903, "Russia")
		s.Require().NoError(err)
		s.Equal("Lenina 10, Moscow, 10, 129903, Russia", a.String())
	})

	s.Run("collects every failure", func() {
		_, err := models.NewAddress(" ", "", 0, -1, "")
		s.Require().Error(err)
		s.Len(dErrors.Messages(err), 5)
	})
}

func (s *PrimitivesSuite) TestPropertyType() {
	for raw, want := range map[string]models.PropertyType{
		"Apartment": models.PropertyTypeApartment,
		"квартира":  models.PropertyTypeApartment,
		" Дом ":     models.PropertyTypeHouse,
		"studio":    models.PropertyTypeStudio,
	} {
		got, err := models.ParsePropertyType(raw)
		s.Require().NoError(err, raw)
		s.Equal(want, got)
	}

	_, err := models.ParsePropertyType("castle")
	s.Require().Error(err)
	s.Equal("Квартира", models.PropertyTypeApartment.DisplayName())
}

func (s *PrimitivesSuite) TestPropertyDetails() {
	s.Run("builds from valid input", func() {
		d, err := models.NewPropertyDetails(models.PropertyDetailsInput{
			Area: 85, Rooms: 3, Floor: 5, TotalFloors: 9, Type: models.PropertyTypeApartment,
		})
		s.Require().NoError(err)
		s.Equal(85, d.Area().Value())
		s.Equal(28, d.RoomArea())
		s.Equal(models.NotSpecified, d.Heating().Value())
		s.Equal(models.NotSpecified, d.Condition().Value())
	})

	s.Run("collects nested failures", func() {
		_, err := models.NewPropertyDetails(models.PropertyDetailsInput{
			Area: 0, Rooms: -1, Floor: 12, TotalFloors: 9, Type: "castle",
		})
		s.Require().Error(err)
		msgs := dErrors.Messages(err)
		s.Len(msgs, 4)
		s.Contains(err.Error(), "area must be positive")
		s.Contains(err.Error(), "floor (12) must not exceed total floors (9)")
	})

	s.Run("keeps balcony and parking flags", func() {
		d := models.MustPropertyDetails(models.PropertyDetailsInput{
			Area: 85, Rooms: 3, Floor: 5, TotalFloors: 9, Type: models.PropertyTypeApartment,
			Balcony: true, Parking: false,
		})
		s.True(d.HasBalcony())
		s.False(d.HasParking())
		s.Contains(d.String(), "балкон: да")
		s.Contains(d.String(), "парковка: нет")

		withParking := models.MustPropertyDetails(models.PropertyDetailsInput{
			Area: 85, Rooms: 3, Floor: 5, TotalFloors: 9, Type: models.PropertyTypeApartment,
			Balcony: true, Parking: true,
		})
		s.NotEqual(d, withParking)
		s.False(withParking.IsZero())
	})

	s.Run("room area is zero for studios", func() {
		d := models.MustPropertyDetails(models.PropertyDetailsInput{
			Area: 30, Rooms: 0, Floor: 1, TotalFloors: 5, Type: models.PropertyTypeStudio,
		})
		s.Equal(0, d.RoomArea())
	})
}
