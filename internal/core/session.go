package core

// Roles recognized across the system. Admin is exempt from discount
// ceilings and the staff menu-edit limit.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// Session carries the authenticated user's identity for one request.
// It is established at login, rebuilt from the bearer token by the auth
// middleware, and passed explicitly to every decision function that
// needs a role. No ambient lookups.
type Session struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
