package domain

import "time"

// Session is the client-side record of being authenticated: an opaque bearer
// token for the platform API plus the role it was issued for.
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoggedIn reports whether the session carries a token. Role alone is never
// sufficient.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// Corrupted reports a token without a recognizable role, which forces
// re-authentication.
func (s *Session) Corrupted() bool {
	if s == nil || s.Token == "" {
		return false
	}
	_, ok := ParseRole(string(s.Role))
	return !ok
}
