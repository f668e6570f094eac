package domain

import "time"

// UserRole represents the institutional role of a user
// Values match the tipo_usuario column of the usuarios table
type UserRole string

const (
	RoleStudent UserRole = "estudiante"
	RoleStaff   UserRole = "funcionario"
	RoleAdmin   UserRole = "administrador"
)

// User represents an institutional account. The RUT (national identifier)
// and institutional e-mail are immutable and unique.
type User struct {
	ID        int64
	RUT       string
	Email     string
	Name      string
	Role      UserRole
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAct returns true if the account may perform any operation at all
func (u *User) CanAct() bool {
	return u.Active
}
