// Package session provides the injected session service: a durable
// key-value record of {token, role} per browser session, with explicit
// get/put/clear semantics and change notification via the event dispatcher.
//
// Readers must not cache sessions across checks; the store is re-read on
// every guard evaluation. Concurrent writers are last-write-wins.
package session

import (
	"context"
	"errors"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Store persists browser sessions keyed by opaque session IDs.
type Store interface {
	// Get returns the session for sid, or ErrNotFound.
	Get(ctx context.Context, sid string) (*domain.Session, error)
	// Put stores the session under sid, replacing any previous value.
	Put(ctx context.Context, sid string, sess domain.Session) error
	// Clear removes the session. Clearing an absent session is not an error.
	Clear(ctx context.Context, sid string) error
}
