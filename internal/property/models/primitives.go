package models

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	dErrors "realestate/pkg/domain-errors"
)

// NotSpecified is the normalised value of an optional free-text attribute the
// caller left blank. It is a valid value, not an error.
const NotSpecified = "Не указано"

const (
	maxArea           = 1_000_000
	maxRooms          = 100
	minFloor          = -10
	maxFloor          = 200
	maxTotalFloors    = 200
	maxFreeTextLen    = 100
	maxDescriptionLen = 1000
)

// Area is the floor area in whole square metres, 1..1,000,000.
type Area struct{ value int }

func NewArea(value int) (Area, error) {
	var v dErrors.Validation
	v.Check(value > 0, "area must be positive")
	v.Check(value <= maxArea, fmt.Sprintf("area must not exceed %d sq. m", maxArea))
	if err := v.Err(); err != nil {
		return Area{}, err
	}
	return Area{value: value}, nil
}

func (a Area) Value() int { return a.value }
func (a Area) IsZero() bool { return a.value == 0 }
func (a Area) String() string { return fmt.Sprintf("%d м²", a.value) }

// NumberOfRooms is 0..100; zero is valid for studios and land plots.
type NumberOfRooms struct {
	value int
	set   bool
}

func NewNumberOfRooms(value int) (NumberOfRooms, error) {
	var v dErrors.Validation
	v.Check(value >= 0, "number of rooms must not be negative")
	v.Check(value <= maxRooms, fmt.Sprintf("number of rooms must not exceed %d", maxRooms))
	if err := v.Err(); err != nil {
		return NumberOfRooms{}, err
	}
	return NumberOfRooms{value: value, set: true}, nil
}

func (n NumberOfRooms) Value() int { return n.value }
func (n NumberOfRooms) IsZero() bool { return !n.set }
func (n NumberOfRooms) String() string { return fmt.Sprintf("%d комн.", n.value) }

// TotalFloors is the number of storeys in a building, 1..200.
type TotalFloors struct{ value int }

func NewTotalFloors(value int) (TotalFloors, error) {
	var v dErrors.Validation
	v.Check(value > 0, "total floors must be positive")
	v.Check(value <= maxTotalFloors, fmt.Sprintf("total floors must not exceed %d", maxTotalFloors))
	if err := v.Err(); err != nil {
		return TotalFloors{}, err
	}
	return TotalFloors{value: value}, nil
}

func (t TotalFloors) Value() int { return t.value }
func (t TotalFloors) IsZero() bool { return t.value == 0 }
func (t TotalFloors) String() string { return fmt.Sprintf("%d эт.", t.value) }

// Floor is a storey number. Zero is the ground level and negative values are
// basement levels down to -10; basements are never bounded by the building height.
type Floor struct {
	value int
	set   bool
}

// NewFloor validates a floor without a known building height.
func NewFloor(value int) (Floor, error) {
	return NewFloorInBuilding(value, math.MaxInt)
}

// NewFloorInBuilding validates a floor against the building's storey count.
func NewFloorInBuilding(value, totalFloors int) (Floor, error) {
	var v dErrors.Validation
	v.Check(value >= minFloor, fmt.Sprintf("floor must not be below %d", minFloor))
	v.Check(value <= 0 || value <= totalFloors,
		fmt.Sprintf("floor (%d) must not exceed total floors (%d)", value, totalFloors))
	v.Check(value <= maxFloor, fmt.Sprintf("floor must not exceed %d", maxFloor))
	if err := v.Err(); err != nil {
		return Floor{}, err
	}
	return Floor{value: value, set: true}, nil
}

func (f Floor) Value() int { return f.value }
func (f Floor) IsZero() bool { return !f.set }
func (f Floor) IsBasement() bool { return f.value < 0 }
func (f Floor) Equal(o Floor) bool { return f == o }

func (f Floor) String() string {
	switch {
	case f.value < 0:
		return fmt.Sprintf("%d подвальный этаж", -f.value)
	case f.value == 0:
		return "Цокольный этаж"
	default:
		return fmt.Sprintf("%d этаж", f.value)
	}
}

// Recommended values; anything else up to 100 characters is still accepted.
var (
	knownHeatingTypes = []string{"Центральное", "Газовое", "Электрическое", "Автономное", "Печное", NotSpecified}
	knownConditions   = []string{
		"Новый", "Отличное", "Хорошее", "Удовлетворительное", "Требует ремонта",
		"Евроремонт", "Косметический ремонт", "Черновая отделка", "Под ремонт", NotSpecified,
	}
)

func parseFreeText(s, field string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NotSpecified, nil
	}
	if utf8.RuneCountInString(trimmed) > maxFreeTextLen {
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s must not exceed %d characters", field, maxFreeTextLen))
	}
	return trimmed, nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// HeatingType is free text; blank input normalises to NotSpecified.
type HeatingType struct{ value string }

func NewHeatingType(s string) (HeatingType, error) {
	v, err := parseFreeText(s, "heating type")
	if err != nil {
		return HeatingType{}, err
	}
	return HeatingType{value: v}, nil
}

func (h HeatingType) Value() string { return h.value }

func (h HeatingType) String() string { return h.value }

func (h HeatingType) IsZero() bool { return h.value == "" }

// IsKnown reports whether the value is one of the recommended heating types.
func (h HeatingType) IsKnown() bool { return containsFold(knownHeatingTypes, h.value) }

func (h HeatingType) Equal(o HeatingType) bool { return strings.EqualFold(h.value, o.value) }

// PropertyCondition is free text; blank input normalises to NotSpecified.
type PropertyCondition struct{ value string }

func NewPropertyCondition(s string) (PropertyCondition, error) {
	v, err := parseFreeText(s, "property condition")
	if err != nil {
		return PropertyCondition{}, err
	}
	return PropertyCondition{value: v}, nil
}

func (c PropertyCondition) Value() string { return c.value }

func (c PropertyCondition) String() string { return c.value }

func (c PropertyCondition) IsZero() bool { return c.value == "" }

func (c PropertyCondition) IsKnown() bool { return containsFold(knownConditions, c.value) }

func (c PropertyCondition) Equal(o PropertyCondition) bool {
	return strings.EqualFold(c.value, o.value)
}

// Description is the listing text, 1..1000 characters after trimming.
type Description struct{ value string }

func NewDescription(s string) (Description, error) {
	trimmed := strings.TrimSpace(s)
	var v dErrors.Validation
	v.Check(trimmed != "", "description cannot be empty")
	v.Check(utf8.RuneCountInString(trimmed) <= maxDescriptionLen,
		fmt.Sprintf("description must not exceed %d characters", maxDescriptionLen))
	if err := v.Err(); err != nil {
		return Description{}, err
	}
	return Description{value: trimmed}, nil
}

// MustDescription panics on invalid input. Use only in tests and fixtures.
func MustDescription(s string) Description {
	d, err := NewDescription(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Description) String() string { return d.value }

func (d Description) IsZero() bool { return d.value == "" }
