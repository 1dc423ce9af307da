package models

// Role is the caller's role as resolved by the authorization gate. Roles are
// carried as enumerated tags next to the caller id rather than as user types;
// this service trusts the resolution and never re-verifies identity.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// Caller is the authenticated identity attached to a request.
type Caller struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
