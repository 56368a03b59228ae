package domain

// Role enumerates platform access levels carried in the session.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleTailor   Role = "tailor"
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
)

// ParseRole maps a stored string onto a known role. Unknown values are
// rejected so a corrupted store entry never grants access.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleTailor, RoleAdmin, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// DefaultLandingPath returns where a role lands after login or when it is
// bounced off a view it may not see.
func (r Role) DefaultLandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleTailor:
		return "/tailor"
	default:
		return "/dashboard"
	}
}
