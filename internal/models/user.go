package models

// Staff roles. Collections staff ("cobros") may record payments but not
// finalize them as paid.
const (
	RoleAdmin       = "admin"
	RoleSupervisor  = "supervisor"
	RoleCollections = "cobros"
)

// User represents a staff account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// WhatsApp is the user's contact number for notifications.
	WhatsApp string `json:"whatsapp"`

	// Email is the user's email address (unique, used for login).
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`

	// Role is one of RoleAdmin, RoleSupervisor, RoleCollections.
	Role string `json:"role"`

	// Active indicates whether the user may log in.
	Active bool `json:"active"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// UserPatch is a partial update for a user. Nil fields are left unchanged.
type UserPatch struct {
	Name     *string `json:"name"`
	WhatsApp *string `json:"whatsapp"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *UserPatch) IsEmpty() bool {
	return p.Name == nil && p.WhatsApp == nil && p.Email == nil &&
		p.Role == nil && p.Active == nil && p.Password == nil
}
