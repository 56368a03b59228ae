package guard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/auth"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/events"
	"github.com/spec-kit/tailoring-webclient/internal/session"
)

const (
	sessionKey   = "guard_session"
	sessionIDKey = "guard_session_id"
)

// Shell executes guard decisions against real requests: it loads sessions
// from the store, clears corrupted ones and issues redirects. Guard logic
// itself stays in Check.
type Shell struct {
	store      session.Store
	inspector  *auth.TokenInspector
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cookieName string
}

// NewShell constructs the routing shell.
func NewShell(store session.Store, inspector *auth.TokenInspector, dispatcher events.Dispatcher, logger *zap.Logger, cookieName string) *Shell {
	return &Shell{
		store:      store,
		inspector:  inspector,
		dispatcher: dispatcher,
		logger:     logger,
		cookieName: cookieName,
	}
}

// LoadSession resolves the session cookie against the store on every
// request. Sessions are never cached across requests; the store is the
// single source of truth.
func (s *Shell) LoadSession(c *fiber.Ctx) error {
	sid := c.Cookies(s.cookieName)
	if sid == "" {
		return c.Next()
	}
	c.Locals(sessionIDKey, sid)

	sess, err := s.store.Get(c.UserContext(), sid)
	if err != nil {
		if err != session.ErrNotFound {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return c.Next()
	}
	c.Locals(sessionKey, sess)
	return c.Next()
}

// Protect gates a route group. redirectTo overrides the role-default
// landing path for the "wrong role" case; pass "" to use the default.
func (s *Shell) Protect(redirectTo string, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)

		// An expired bearer token can no longer authenticate against the
		// platform; treat it like corrupted state and force re-login.
		if sess.LoggedIn() && s.inspector.Expired(sess.Token, time.Now()) {
			s.clear(c, "corrupted")
			return s.redirect(c, LoginPath)
		}

		decision := Check(sess, allowed, redirectTo)
		if decision.ClearSession {
			s.clear(c, "corrupted")
		}
		if decision.Status == StatusRedirect {
			return s.redirect(c, decision.To)
		}
		return c.Next()
	}
}

func (s *Shell) clear(c *fiber.Ctx, reason string) {
	sid, ok := SessionIDFromContext(c)
	if !ok {
		return
	}
	if err := s.store.Clear(c.UserContext(), sid); err != nil {
		s.logger.Warn("session clear failed", zap.Error(err))
		return
	}
	c.Locals(sessionKey, nil)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(c.UserContext(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionCleared,
			SessionID: sid,
			Timestamp: time.Now(),
			Payload:   events.SessionClearedPayload{Reason: reason},
		})
	}
}

// redirect renders nothing and navigates; at most one redirect per check.
func (s *Shell) redirect(c *fiber.Ctx, to string) error {
	return c.Redirect(to, fiber.StatusFound)
}

// SessionFromContext retrieves the loaded session, if any.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*domain.Session)
	return sess, ok
}

// SessionIDFromContext retrieves the session cookie value, if present.
func SessionIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(sessionIDKey)
	if val == nil {
		return "", false
	}
	sid, ok := val.(string)
	return sid, ok
}
