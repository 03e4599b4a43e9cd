package entities

import "time"

// PropertyType classifies the property an estimate is for. The pricing table
// maps each type to a height multiplier; unknown types price at 1.0.

type PropertyType string

const (
	PropertyTypeFlat         PropertyType = "flat"
	PropertyTypeTerraced     PropertyType = "terraced"
	PropertyTypeSemiDetached PropertyType = "semi_detached"
	PropertyTypeDetached     PropertyType = "detached"
	PropertyTypeBungalow     PropertyType = "bungalow"
)

// RoomMeasurement is one room's floor dimensions in metres.
type RoomMeasurement struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns the floor area in square metres.
func (r RoomMeasurement) Area() float64 {
	return r.Length * r.Width
}

// ExtrasSpec counts the per-item extras a customer wants included.
type ExtrasSpec struct {
	Doors          int `json:"doors"`
	Windows        int `json:"windows"`
	SkirtingBoards int `json:"skirting_boards"`
}

// EstimateRequest is the immutable input to the pricing engine. It is created
// by the customer flow, never mutated after submission and consumed once.
//
// PackageID switches the engine into quick-quote mode: the package's price
// band replaces the per-room calculation (used by trades priced per package
// tier rather than per measurement, e.g. plastering and flooring).
type EstimateRequest struct {
	Rooms        []RoomMeasurement `json:"rooms"`
	PropertyType PropertyType      `json:"property_type"`
	Postcode     string            `json:"postcode"`
	Extras       ExtrasSpec        `json:"extras"`
	PackageID    string            `json:"package_id,omitempty"`
}

// PriceRange is a min/max price pair in whole units of the base currency.
// Amounts stay integral because the engine rounds every computed price to the
// nearest ten units.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Estimate is a priced request persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Paid is a one-way transition false -> true, granted only through the payment
// flow after gateway approval. No client-facing path writes it directly.
type Estimate struct {
	ID        string          `json:"id"`
	Request   EstimateRequest `json:"request"`
	Price     PriceRange      `json:"price"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"created_at"`
}
