package models

import (
	"strings"

	dErrors "realestate/pkg/domain-errors"
)

// PropertyType classifies a property.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeStudio     PropertyType = "studio"
)

var propertyTypeDisplayNames = map[PropertyType]string{
	PropertyTypeApartment:  "Квартира",
	PropertyTypeHouse:      "Дом",
	PropertyTypeCommercial: "Коммерческое помещение",
	PropertyTypeLand:       "Земельный участок",
	PropertyTypeTownhouse:  "Таунхаус",
	PropertyTypeStudio:     "Студия",
}

var propertyTypeAliases = map[string]PropertyType{
	"apartment":              PropertyTypeApartment,
	"квартира":               PropertyTypeApartment,
	"house":                  PropertyTypeHouse,
	"дом":                    PropertyTypeHouse,
	"commercial":             PropertyTypeCommercial,
	"коммерческое":           PropertyTypeCommercial,
	"коммерческое помещение": PropertyTypeCommercial,
	"land":                   PropertyTypeLand,
	"участок":                PropertyTypeLand,
	"земельный участок":      PropertyTypeLand,
	"townhouse":              PropertyTypeTownhouse,
	"таунхаус":               PropertyTypeTownhouse,
	"studio":                 PropertyTypeStudio,
	"студия":                 PropertyTypeStudio,
}

// ParsePropertyType accepts English codes and Russian display names, ignoring case.
func ParsePropertyType(s string) (PropertyType, error) {
	t, ok := propertyTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", dErrors.New(dErrors.CodeValidation, "unknown property type")
	}
	return t, nil
}

func (t PropertyType) IsValid() bool {
	_, ok := propertyTypeDisplayNames[t]
	return ok
}

// DisplayName returns the Russian label used in listings.
func (t PropertyType) DisplayName() string {
	return propertyTypeDisplayNames[t]
}

func (t PropertyType) String() string {
	return string(t)
}
