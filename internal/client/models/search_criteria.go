package models

import (
	"fmt"
	"strings"

	property "realestate/internal/property/models"
	dErrors "realestate/pkg/domain-errors"
)

// SearchCriteriaInput carries a client's raw preferences. Nil means "no preference".
type SearchCriteriaInput struct {
	Area        *int
	Rooms       *int
	Floor       *int
	TotalFloors *int
	Type        *property.PropertyType
	Balcony     *bool
	Parking     *bool
	Heating     *string
	Condition   *string
}

// SearchCriteria is what a client is looking for. Every preference is optional.
type SearchCriteria struct {
	area        *property.Area
	rooms       *property.NumberOfRooms
	floor       *property.Floor
	totalFloors *property.TotalFloors
	propType    *property.PropertyType
	balcony     *bool
	parking     *bool
	heating     *property.HeatingType
	condition   *property.PropertyCondition
}

// NewSearchCriteria validates only the preferences that are present and
// reports every failure together.
func NewSearchCriteria(in SearchCriteriaInput) (*SearchCriteria, error) {
	var v dErrors.Validation
	c := &SearchCriteria{}

	if in.Area != nil {
		a, err := property.NewArea(*in.Area)
		v.Merge(err)
		c.area = &a
	}
	if in.Rooms != nil {
		r, err := property.NewNumberOfRooms(*in.Rooms)
		v.Merge(err)
		c.rooms = &r
	}
	if in.TotalFloors != nil {
		t, err := property.NewTotalFloors(*in.TotalFloors)
		v.Merge(err)
		c.totalFloors = &t
	}
	if in.Floor != nil {
		var f property.Floor
		var err error
		if in.TotalFloors != nil {
			f, err = property.NewFloorInBuilding(*in.Floor, *in.TotalFloors)
		} else {
			f, err = property.NewFloor(*in.Floor)
		}
		v.Merge(err)
		c.floor = &f
	}
	if in.Type != nil {
		t := *in.Type
		v.Check(t.IsValid(), fmt.Sprintf("unknown property type %q", t))
		c.propType = &t
	}
	if in.Balcony != nil {
		b := *in.Balcony
		c.balcony = &b
	}
	if in.Parking != nil {
		p := *in.Parking
		c.parking = &p
	}
	if in.Heating != nil {
		h, err := property.NewHeatingType(*in.Heating)
		v.Merge(err)
		c.heating = &h
	}
	if in.Condition != nil {
		cond, err := property.NewPropertyCondition(*in.Condition)
		v.Merge(err)
		c.condition = &cond
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SearchCriteria) Area() (property.Area, bool) { return deref(c.area) }
func (c *SearchCriteria) Rooms() (property.NumberOfRooms, bool) { return deref(c.rooms) }
func (c *SearchCriteria) Floor() (property.Floor, bool) { return deref(c.floor) }
func (c *SearchCriteria) TotalFloors() (property.TotalFloors, bool) { return deref(c.totalFloors) }
func (c *SearchCriteria) Type() (property.PropertyType, bool) { return deref(c.propType) }
func (c *SearchCriteria) Balcony() (bool, bool) { return deref(c.balcony) }
func (c *SearchCriteria) Parking() (bool, bool) { return deref(c.parking) }
func (c *SearchCriteria) Heating() (property.HeatingType, bool) { return deref(c.heating) }
func (c *SearchCriteria) Condition() (property.PropertyCondition, bool) { return deref(c.condition) }

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// IsEmpty reports whether no preference is set.
func (c *SearchCriteria) IsEmpty() bool {
	return c == nil || *c == SearchCriteria{}
}

// Equal compares preferences by value; nil and empty criteria are equal.
func (c *SearchCriteria) Equal(o *SearchCriteria) bool {
	if c.IsEmpty() || o.IsEmpty() {
		return c.IsEmpty() && o.IsEmpty()
	}
	return eqPtr(c.area, o.area) &&
		eqPtr(c.rooms, o.rooms) &&
		eqPtr(c.floor, o.floor) &&
		eqPtr(c.totalFloors, o.totalFloors) &&
		eqPtr(c.propType, o.propType) &&
		eqPtr(c.balcony, o.balcony) &&
		eqPtr(c.parking, o.parking) &&
		eqFunc(c.heating, o.heating, property.HeatingType.Equal) &&
		eqFunc(c.condition, o.condition, property.PropertyCondition.Equal)
}

func eqPtr[T comparable](a, b *T) bool {
	return eqFunc(a, b, func(x, y T) bool { return x == y })
}

func eqFunc[T any](a, b *T, eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(*a, *b)
}

func (c *SearchCriteria) String() string {
	if c.IsEmpty() {
		return "No criteria"
	}
	var parts []string
	if c.area != nil {
		parts = append(parts, "Area: "+c.area.String())
	}
	if c.rooms != nil {
		parts = append(parts, fmt.Sprintf("Rooms: %d", c.rooms.Value()))
	}
	if c.floor != nil {
		parts = append(parts, "Floor: "+c.floor.String())
	}
	if c.totalFloors != nil {
		parts = append(parts, fmt.Sprintf("TotalFloors: %d", c.totalFloors.Value()))
	}
	if c.propType != nil {
		parts = append(parts, "Type: "+c.propType.DisplayName())
	}
	if c.balcony != nil {
		parts = append(parts, fmt.Sprintf("Balcony: %t", *c.balcony))
	}
	if c.parking != nil {
		parts = append(parts, fmt.Sprintf("Parking: %t", *c.parking))
	}
	if c.heating != nil {
		parts = append(parts, "Heating: "+c.heating.String())
	}
	if c.condition != nil {
		parts = append(parts, "Condition: "+c.condition.String())
	}
	return strings.Join(parts, ", ")
}
