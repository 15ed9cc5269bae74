package models

import (
	"fmt"

	dErrors "realestate/pkg/domain-errors"
)

// PropertyDetailsInput carries the raw attributes of a listing.
type PropertyDetailsInput struct {
	Area        int
	Rooms       int
	Floor       int
	TotalFloors int
	Type        PropertyType
	Balcony     bool
	Parking     bool
	Heating     string
	Condition   string
}

// PropertyDetails groups the physical characteristics of a property.
// Invariant: Floor never exceeds TotalFloors for above-ground floors.
type PropertyDetails struct {
	area         Area
	rooms        NumberOfRooms
	floor        Floor
	totalFloors  TotalFloors
	propertyType PropertyType
	hasBalcony   bool
	hasParking   bool
	heating      HeatingType
	condition    PropertyCondition
}

// NewPropertyDetails validates every attribute and reports all failures together.
func NewPropertyDetails(in PropertyDetailsInput) (PropertyDetails, error) {
	var v dErrors.Validation

	area, err := NewArea(in.Area)
	v.Merge(err)
	rooms, err := NewNumberOfRooms(in.Rooms)
	v.Merge(err)
	total, err := NewTotalFloors(in.TotalFloors)
	v.Merge(err)
	floor, err := NewFloorInBuilding(in.Floor, in.TotalFloors)
	v.Merge(err)
	heating, err := NewHeatingType(in.Heating)
	v.Merge(err)
	condition, err := NewPropertyCondition(in.Condition)
	v.Merge(err)
	v.Check(in.Type.IsValid(), fmt.Sprintf("unknown property type %q", in.Type))

	if err := v.Err(); err != nil {
		return PropertyDetails{}, err
	}
	return PropertyDetails{
		area:         area,
		rooms:        rooms,
		floor:        floor,
		totalFloors:  total,
		propertyType: in.Type,
		hasBalcony:   in.Balcony,
		hasParking:   in.Parking,
		heating:      heating,
		condition:    condition,
	}, nil
}

// MustPropertyDetails panics on invalid input. Use only in tests and fixtures.
func MustPropertyDetails(in PropertyDetailsInput) PropertyDetails {
	d, err := NewPropertyDetails(in)
	if err != nil {
		panic(err)
	}
	return d
}

func (d PropertyDetails) Area() Area { return d.area }
func (d PropertyDetails) Rooms() NumberOfRooms { return d.rooms }
func (d PropertyDetails) Floor() Floor { return d.floor }
func (d PropertyDetails) TotalFloors() TotalFloors { return d.totalFloors }
func (d PropertyDetails) Type() PropertyType { return d.propertyType }
func (d PropertyDetails) HasBalcony() bool { return d.hasBalcony }
func (d PropertyDetails) HasParking() bool { return d.hasParking }
func (d PropertyDetails) Heating() HeatingType { return d.heating }
func (d PropertyDetails) Condition() PropertyCondition { return d.condition }
func (d PropertyDetails) IsZero() bool { return d == PropertyDetails{} }

// RoomArea is the average area per room, or zero when it cannot be computed.
func (d PropertyDetails) RoomArea() int {
	rooms := d.rooms.Value()
	if rooms <= 0 || d.area.Value() <= rooms {
		return 0
	}
	return d.area.Value() / rooms
}

func (d PropertyDetails) String() string {
	return fmt.Sprintf("%s, %s, %s, %s из %d, балкон: %s, парковка: %s, отопление: %s, состояние: %s",
		d.propertyType.DisplayName(), d.area, d.rooms, d.floor, d.totalFloors.Value(),
		yesNo(d.hasBalcony), yesNo(d.hasParking), d.heating, d.condition)
}

func yesNo(b bool) string {
	if b {
		return "да"
	}
	return "нет"
}
