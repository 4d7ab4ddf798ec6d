package models

// Tenant represents a person renting a room. The national ID (DNI) is
// unique across tenants.
type Tenant struct {
	ID string `json:"id"`

	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	DNI    string `json:"dni"`
	Active bool   `json:"active"`
}

// TenantPatch is a partial update for a tenant.
type TenantPatch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	DNI    *string `json:"dni"`
	Active *bool   `json:"active"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *TenantPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.DNI == nil && p.Active == nil
}

// TenantFilter narrows tenant listings.
type TenantFilter struct {
	// Search matches name, email, phone or DNI as a case-insensitive
	// substring.
	Search string

	// Active filters by active flag when set.
	Active *bool
}
