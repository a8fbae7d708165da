package models

import "time"

// City is one of the supported Portuguese locales.
type City string

const (
	CityLisbon  City = "lisbon"
	CityPorto   City = "porto"
	CityAlgarve City = "algarve"
	CityBraga   City = "braga"
	CityCoimbra City = "coimbra"
	CityAveiro  City = "aveiro"
	CityFunchal City = "funchal"
	CityFaro    City = "faro"
)

// AllCities lists every supported city, in display order.
var AllCities = []City{
	CityLisbon, CityPorto, CityAlgarve, CityBraga,
	CityCoimbra, CityAveiro, CityFunchal, CityFaro,
}

// Valid reports whether c is a supported city.
func (c City) Valid() bool {
	for _, known := range AllCities {
		if c == known {
			return true
		}
	}
	return false
}

// PropertyType is the kind of listing.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeVilla     PropertyType = "villa"
)

// Valid reports whether t is a supported property type.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla:
		return true
	}
	return false
}

// Property is a listing as exposed by the API. Decimal quantities are
// numeric here; the store keeps them as fixed-precision text.
type Property struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	City         City         `json:"city"`
	Address      string       `json:"address"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	AreaSqm      float64      `json:"area_sqm"`
	PropertyType PropertyType `json:"property_type"`
	IsFeatured   bool         `json:"is_featured"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PropertyWithImages is the detail view: a property plus its images
// ordered by sort_order.
type PropertyWithImages struct {
	Property
	Images []PropertyImage `json:"images"`
}

// CreatePropertyInput carries all fields required to create a listing.
// is_featured defaults to false when omitted.
type CreatePropertyInput struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	Price        float64      `json:"price" binding:"required,gt=0"`
	City         City         `json:"city" binding:"required,oneof=lisbon porto algarve braga coimbra aveiro funchal faro"`
	Address      string       `json:"address" binding:"required"`
	Latitude     float64      `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude    float64      `json:"longitude" binding:"gte=-180,lte=180"`
	Bedrooms     int          `json:"bedrooms" binding:"gte=0"`
	Bathrooms    int          `json:"bathrooms" binding:"gte=0"`
	AreaSqm      float64      `json:"area_sqm" binding:"required,gt=0"`
	PropertyType PropertyType `json:"property_type" binding:"required,oneof=apartment house villa"`
	IsFeatured   bool         `json:"is_featured"`
}

// UpdatePropertyInput carries a partial update; nil fields are left
// untouched. ID and timestamps are never client-settable.
type UpdatePropertyInput struct {
	Title        *string       `json:"title" binding:"omitempty,min=1"`
	Description  *string       `json:"description" binding:"omitempty,min=1"`
	Price        *float64      `json:"price" binding:"omitempty,gt=0"`
	City         *City         `json:"city" binding:"omitempty,oneof=lisbon porto algarve braga coimbra aveiro funchal faro"`
	Address      *string       `json:"address" binding:"omitempty,min=1"`
	Latitude     *float64      `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude    *float64      `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Bedrooms     *int          `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int          `json:"bathrooms" binding:"omitempty,gte=0"`
	AreaSqm      *float64      `json:"area_sqm" binding:"omitempty,gt=0"`
	PropertyType *PropertyType `json:"property_type" binding:"omitempty,oneof=apartment house villa"`
	IsFeatured   *bool         `json:"is_featured"`
}

// PropertyFilters holds the optional catalog filters. Every field is
// independently optional; set fields are combined with AND. Pointer
// fields distinguish "unset" from zero values (an explicit
// is_featured=false is a real predicate).
type PropertyFilters struct {
	City         City
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	PropertyType PropertyType
	IsFeatured   *bool
}
