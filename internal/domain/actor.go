package domain

// Role of the caller as forwarded by the gateway
type Role string

const (
	RoleClient Role = "cliente"
	RoleAdmin  Role = "admin"
)

// Actor authenticated caller of an operation
type Actor struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller manages the court
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess owners and admins may read or change a record
func (a Actor) CanAccess(ownerID int64) bool {
	return a.IsAdmin() || (a.UserID > 0 && a.UserID == ownerID)
}
