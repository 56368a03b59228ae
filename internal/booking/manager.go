package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/events"
)

type wizardEntry struct {
	wizard   *Wizard
	lastUsed time.Time
}

// Manager owns one wizard per browser session. Wizards live for the
// lifetime of the flow: created lazily on first use, discarded on
// submission, logout, session clearing or abandonment (idle TTL).
type Manager struct {
	mu      sync.Mutex
	entries map[string]*wizardEntry

	source  SlotSource
	creator AppointmentCreator
	opts    Options
	idleTTL time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// NewManager builds the wizard registry.
func NewManager(source SlotSource, creator AppointmentCreator, opts Options, logger *zap.Logger) *Manager {
	idleTTL := opts.IdleTTL
	if idleTTL <= 0 {
		idleTTL = 12 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		entries: make(map[string]*wizardEntry),
		source:  source,
		creator: creator,
		opts:    opts,
		idleTTL: idleTTL,
		now:     now,
		logger:  logger,
	}
}

// RegisterHandlers drops a session's wizard whenever the session itself
// is cleared, whether by logout, expiry recovery or corrupted-state
// cleanup.
func (m *Manager) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventSessionCleared, func(_ context.Context, event events.Event) error {
		m.Discard(event.SessionID)
		return nil
	})
}

// Get returns the session's wizard, creating one when the flow starts.
// token is the bearer credential the wizard will fetch and submit with.
func (m *Manager) Get(sid, token string) *Wizard {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	if e, ok := m.entries[sid]; ok {
		e.lastUsed = now
		return e.wizard
	}
	w := NewWizard(token, m.source, m.creator, m.opts, m.logger)
	m.entries[sid] = &wizardEntry{wizard: w, lastUsed: now}
	return w
}

// Discard drops the session's wizard, abandoning any in-progress flow.
func (m *Manager) Discard(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sid)
}

// sweepLocked removes flows untouched for longer than the idle TTL, so
// wizards whose sessions silently expired do not accumulate. Callers
// hold m.mu.
func (m *Manager) sweepLocked(now time.Time) {
	for sid, e := range m.entries {
		if now.Sub(e.lastUsed) > m.idleTTL {
			delete(m.entries, sid)
		}
	}
}
