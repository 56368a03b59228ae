// Package guard decides whether a visitor may see role-restricted views.
// The decision is a pure function of the stored session; redirect side
// effects are carried as an explicit navigation intent and executed by the
// HTTP shell. This check only hides UI; the platform API independently
// rejects unauthorized requests.
package guard

import (
	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// Status enumerates guard outcomes.
type Status string

const (
	StatusAuthorized Status = "authorized"
	StatusRedirect   Status = "redirect"
)

// Decision is the navigation intent produced by a check.
type Decision struct {
	Status Status
	// To is the redirect target when Status is StatusRedirect.
	To string
	// ClearSession asks the shell to drop the stored session before
	// redirecting (corrupted state recovery).
	ClearSession bool
}

// Check evaluates the stored session against the allowed roles.
//
// Decision table:
//   - no token: redirect to login.
//   - token without role: corrupted state, clear session, redirect to login.
//   - role not allowed: redirect to redirectTo if given, else to the
//     role's default landing path.
//   - role allowed: authorized.
func Check(sess *domain.Session, allowed []domain.Role, redirectTo string) Decision {
	if !sess.LoggedIn() {
		return Decision{Status: StatusRedirect, To: LoginPath}
	}
	if sess.Corrupted() {
		return Decision{Status: StatusRedirect, To: LoginPath, ClearSession: true}
	}
	for _, role := range allowed {
		if sess.Role == role {
			return Decision{Status: StatusAuthorized}
		}
	}
	to := redirectTo
	if to == "" {
		to = sess.Role.DefaultLandingPath()
	}
	return Decision{Status: StatusRedirect, To: to}
}
