package models

// Room represents a rentable unit inside a property.
// At most one active contract may reference a room at any time.
type Room struct {
	ID string `json:"id"`

	// PropertyID references the parent property.
	PropertyID string `json:"propertyId"`

	Name         string  `json:"name"`
	SquareMeters float64 `json:"squareMeters"`

	// BasePrice is the reference monthly rent for the room.
	BasePrice float64 `json:"basePrice"`
}

// RoomPatch is a partial update for a room. The parent property cannot be
// changed after creation.
type RoomPatch struct {
	Name         *string  `json:"name"`
	SquareMeters *float64 `json:"squareMeters"`
	BasePrice    *float64 `json:"basePrice"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *RoomPatch) IsEmpty() bool {
	return p.Name == nil && p.SquareMeters == nil && p.BasePrice == nil
}
