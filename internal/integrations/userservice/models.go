package userservice

// Roles known to the user service
const (
	RoleClient = "cliente"
	RoleAdmin  = "admin"
)

// User profile fields the booking engine needs
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Blocked bool   `json:"blocked"`
}

// IsAdmin reports whether the user manages the court
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
