package models

// Property represents a building or flat that groups rentable rooms.
type Property struct {
	ID string `json:"id"`

	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`

	// HasCleaningService indicates a shared cleaning service is contracted
	// for the property; MonthlyCleaningAmount is its monthly cost when set.
	HasCleaningService    bool     `json:"hasCleaningService"`
	MonthlyCleaningAmount *float64 `json:"monthlyCleaningAmount,omitempty"`
}

// PropertyPatch is a partial update for a property.
type PropertyPatch struct {
	Name                  *string  `json:"name"`
	Address               *string  `json:"address"`
	Notes                 *string  `json:"notes"`
	HasCleaningService    *bool    `json:"hasCleaningService"`
	MonthlyCleaningAmount *float64 `json:"monthlyCleaningAmount"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *PropertyPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Notes == nil &&
		p.HasCleaningService == nil && p.MonthlyCleaningAmount == nil
}
