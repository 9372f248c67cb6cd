package domain

// Property is the sole catalog entity. Inventory feeds are not guaranteed
// complete, so everything except the identifier is optional. Records are
// immutable after load; defaulting happens in the read accessors below and
// is never written back into the record.
type Property struct {
	ID           string   `json:"id"`
	Type         *string  `json:"type,omitempty"`
	City         *string  `json:"city,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	SquareFeet   *float64 `json:"square_feet,omitempty"`
	YearBuilt    *int     `json:"year_built,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// Read accessors: one per optional field so every caller gets the same
// default instead of re-deriving it ad hoc.

func (p Property) TypeName() string         { return strOr(p.Type) }
func (p Property) CityName() string         { return strOr(p.City) }
func (p Property) NeighborhoodName() string { return strOr(p.Neighborhood) }
func (p Property) AddressLine() string      { return strOr(p.Address) }
func (p Property) PriceValue() float64      { return f64Or(p.Price) }
func (p Property) BedroomCount() int        { return intOr(p.Bedrooms) }
func (p Property) BathroomCount() int       { return intOr(p.Bathrooms) }
func (p Property) AreaSqFt() float64        { return f64Or(p.SquareFeet) }
func (p Property) BuiltYear() int           { return intOr(p.YearBuilt) }
func (p Property) DescriptionText() string  { return strOr(p.Description) }

// SearchCriteria is the set of independently optional buyer predicates. A nil
// field means "no constraint", never "match records where the field is
// absent".
type SearchCriteria struct {
	Location     *string
	PropertyType *string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *int
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func f64Or(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func intOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
