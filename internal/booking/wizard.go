// Package booking drives the appointment wizard: pick a date, load the
// tailor's availability for it, pick a free slot, confirm and submit.
// Availability loads are tagged with a generation counter; only the
// response matching the latest (tailor, date) selection is ever applied,
// so superseded fetches are discarded instead of cancelled.
package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// State enumerates wizard phases.
type State string

const (
	StateSelectingDate State = "selecting_date"
	StateLoadingSlots  State = "loading_slots"
	StateSelectingSlot State = "selecting_slot"
	StateConfirming    State = "confirming"
	StateSubmitted     State = "submitted"
)

// SlotSource fetches availability for a (tailor, branch, date) selection.
type SlotSource interface {
	Availability(ctx context.Context, token string, tailorID, branchID int64, date time.Time) ([]domain.Slot, error)
}

// AppointmentCreator submits the confirmed booking.
type AppointmentCreator interface {
	CreateAppointment(ctx context.Context, token string, req upstream.AppointmentCreateRequest) (*domain.Appointment, error)
}

// Options bound wizard behavior.
type Options struct {
	// Horizon caps how far ahead a date may be picked.
	Horizon time.Duration
	// BranchID scopes availability; defaults to the shop's primary branch.
	BranchID int64
	// FetchTimeout bounds a single availability load.
	FetchTimeout time.Duration
	// IdleTTL is how long the Manager keeps an untouched wizard before
	// treating the flow as abandoned; defaults to 12 hours.
	IdleTTL time.Duration
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Snapshot is a read-only view of the wizard for rendering.
type Snapshot struct {
	State        State         `json:"state"`
	Date         *time.Time    `json:"selected_date,omitempty"`
	TailorID     int64         `json:"selected_tailor_id,omitempty"`
	Slots        []domain.Slot `json:"available_slots"`
	SelectedTime string        `json:"selected_time,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Wizard is the per-session booking flow. All mutations are serialized;
// availability loads run outside the lock and report back through
// applySlots with the generation they were dispatched under.
type Wizard struct {
	mu sync.Mutex

	state      State
	token      string
	date       time.Time
	tailorID   int64
	slots      []domain.Slot
	selected   *domain.Slot
	generation uint64
	lastErr    string

	source  SlotSource
	creator AppointmentCreator
	opts    Options
	logger  *zap.Logger
}

// NewWizard starts a flow in SelectingDate.
func NewWizard(token string, source SlotSource, creator AppointmentCreator, opts Options, logger *zap.Logger) *Wizard {
	if opts.Horizon <= 0 {
		opts.Horizon = 60 * 24 * time.Hour
	}
	if opts.BranchID == 0 {
		opts.BranchID = 1
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Wizard{
		state:   StateSelectingDate,
		token:   token,
		source:  source,
		creator: creator,
		opts:    opts,
		logger:  logger,
	}
}

// Snapshot returns the current view.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		State:    w.state,
		TailorID: w.tailorID,
		Slots:    append([]domain.Slot(nil), w.slots...),
		Error:    w.lastErr,
	}
	if !w.date.IsZero() {
		d := w.date
		snap.Date = &d
	}
	if w.selected != nil {
		snap.SelectedTime = w.selected.Label()
	}
	return snap
}

// SetDate picks a new appointment date. Any previously loaded slots and
// slot selection are invalidated before the next load completes.
func (w *Wizard) SetDate(date time.Time) error {
	// Calendar days are compared in the incoming date's zone, so "today"
	// names the same day on both sides whatever zone the server runs in.
	today := truncateToDay(w.opts.Now().In(date.Location()))
	day := truncateToDay(date)
	if day.Before(today) {
		return util.NewValidationError("date must not be in the past", nil)
	}
	if day.After(today.Add(w.opts.Horizon)) {
		return util.NewValidationError("date is beyond the booking horizon", nil)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateSubmitted {
		return util.NewValidationError("booking already submitted", nil)
	}
	w.date = day
	w.invalidateLocked()
	return nil
}

// SetTailor picks the tailor whose availability should be shown. Like a
// date change, it invalidates loaded slots and any selection.
func (w *Wizard) SetTailor(tailorID int64) error {
	if tailorID <= 0 {
		return util.NewValidationError("tailor is required", nil)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateSubmitted {
		return util.NewValidationError("booking already submitted", nil)
	}
	w.tailorID = tailorID
	w.invalidateLocked()
	return nil
}

// invalidateLocked clears dependent selection state, bumps the generation
// so in-flight loads become stale, and dispatches a fresh load when both
// date and tailor are known. Callers hold w.mu.
func (w *Wizard) invalidateLocked() {
	w.slots = nil
	w.selected = nil
	w.lastErr = ""
	w.generation++

	if w.date.IsZero() || w.tailorID == 0 {
		w.state = StateSelectingDate
		return
	}
	w.state = StateLoadingSlots
	go w.fetch(w.generation, w.tailorID, w.date)
}

// fetch loads availability and applies it only if the wizard still waits
// for this generation.
func (w *Wizard) fetch(gen uint64, tailorID int64, date time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), w.opts.FetchTimeout)
	defer cancel()

	slots, err := w.source.Availability(ctx, w.token, tailorID, w.opts.BranchID, date)
	w.applySlots(gen, slots, err)
}

// applySlots installs a load result. Results for superseded generations
// are discarded.
func (w *Wizard) applySlots(gen uint64, slots []domain.Slot, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		w.logger.Debug("discarding stale availability response",
			zap.Uint64("got", gen), zap.Uint64("want", w.generation))
		return
	}
	if w.state != StateLoadingSlots {
		return
	}

	if err != nil {
		// Best effort: surface the failure, user re-triggers by changing
		// the date or retrying.
		w.state = StateSelectingSlot
		w.slots = nil
		w.lastErr = util.ToDomainError(err).Message
		return
	}

	// An empty grid is an explicit empty state, not an error. A prior
	// submission error stays surfaced until the user acts again.
	w.state = StateSelectingSlot
	w.slots = slots
}

// Reload re-fetches availability for the current selection, e.g. after a
// failed submission or from a retry button.
func (w *Wizard) Reload() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.date.IsZero() || w.tailorID == 0 {
		return util.NewValidationError("select a date and tailor first", nil)
	}
	if w.state == StateSubmitted {
		return util.NewValidationError("booking already submitted", nil)
	}
	w.invalidateLocked()
	return nil
}

// SelectSlot picks the slot starting at startTime. Only a slot currently
// present and available may be selected; anything else leaves the
// selection untouched.
func (w *Wizard) SelectSlot(startTime time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateSelectingSlot && w.state != StateConfirming {
		return util.NewValidationError("no slots to select yet", nil)
	}
	for i := range w.slots {
		if !w.slots[i].StartTime.Equal(startTime) {
			continue
		}
		if !w.slots[i].IsAvailable {
			return util.NewValidationError("slot is not available", nil)
		}
		chosen := w.slots[i]
		w.selected = &chosen
		w.state = StateConfirming
		w.lastErr = ""
		return nil
	}
	return util.NewValidationError("slot is not available", nil)
}

// Back steps from confirmation to slot selection, dropping the choice.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirming {
		return
	}
	w.selected = nil
	w.state = StateSelectingSlot
}

// Submit posts the confirmed booking. On conflict (slot taken
// concurrently) or transient failure the wizard returns to slot
// selection, surfaces the error and re-fetches availability, since the
// previously selected slot may be stale.
func (w *Wizard) Submit(ctx context.Context, appointmentType domain.AppointmentType, notes string) (*domain.Appointment, error) {
	w.mu.Lock()
	if w.state != StateConfirming || w.selected == nil {
		w.mu.Unlock()
		return nil, util.NewValidationError("confirm an available slot before submitting", nil)
	}
	req := upstream.AppointmentCreateRequest{
		TailorID:        w.tailorID,
		BranchID:        w.opts.BranchID,
		AppointmentType: appointmentType,
		ScheduledDate:   w.selected.StartTime,
		DurationMinutes: int(w.selected.EndTime.Sub(w.selected.StartTime) / time.Minute),
		CustomerNotes:   notes,
	}
	token := w.token
	w.mu.Unlock()

	appt, err := w.creator.CreateAppointment(ctx, token, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.lastErr = util.ToDomainError(err).Message
		w.selected = nil
		w.slots = nil
		w.state = StateLoadingSlots
		w.generation++
		go w.fetch(w.generation, w.tailorID, w.date)
		return nil, err
	}

	w.state = StateSubmitted
	w.lastErr = ""
	return appt, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
