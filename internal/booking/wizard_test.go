package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/upstream"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

type fetchResult struct {
	slots []domain.Slot
	err   error
}

type fetchCall struct {
	date     time.Time
	tailorID int64
	reply    chan fetchResult
}

// fakeSource hands each availability call to the test, which decides
// when and with what to answer. That makes response arrival order fully
// controllable.
type fakeSource struct {
	calls chan fetchCall
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: make(chan fetchCall, 16)}
}

func (f *fakeSource) Availability(_ context.Context, _ string, tailorID, _ int64, date time.Time) ([]domain.Slot, error) {
	call := fetchCall{date: date, tailorID: tailorID, reply: make(chan fetchResult, 1)}
	f.calls <- call
	res := <-call.reply
	return res.slots, res.err
}

func (f *fakeSource) next(t *testing.T) fetchCall {
	t.Helper()
	select {
	case call := <-f.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("expected an availability fetch to be dispatched")
		return fetchCall{}
	}
}

type fakeCreator struct {
	err   error
	appt  *domain.Appointment
	calls int
}

func (f *fakeCreator) CreateAppointment(_ context.Context, _ string, _ upstream.AppointmentCreateRequest) (*domain.Appointment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.appt, nil
}

func slotAt(day time.Time, hour int, available bool) domain.Slot {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	return domain.Slot{
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		TailorID:    7,
		TailorName:  "Asha",
		IsAvailable: available,
	}
}

func newTestWizard(source SlotSource, creator AppointmentCreator) *Wizard {
	return NewWizard("tok", source, creator, Options{
		BranchID:     1,
		FetchTimeout: time.Second,
	}, zap.NewNop())
}

func waitForState(t *testing.T, w *Wizard, want State) {
	t.Helper()
	require.Eventually(t, func() bool {
		return w.Snapshot().State == want
	}, 2*time.Second, 5*time.Millisecond)
}

func TestWizard_StaleAvailabilityResponseDiscarded(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})

	day1 := time.Now().AddDate(0, 0, 1)
	day2 := time.Now().AddDate(0, 0, 2)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day1))
	first := source.next(t)

	// The user changes the date before the first fetch resolves.
	require.NoError(t, w.SetDate(day2))
	second := source.next(t)

	// The later request resolves first and is applied.
	fresh := []domain.Slot{slotAt(day2, 10, true)}
	second.reply <- fetchResult{slots: fresh}
	waitForState(t, w, StateSelectingSlot)
	require.Equal(t, fresh, w.Snapshot().Slots)

	// The late-arriving response for the old date must not repopulate
	// slots for the new one.
	first.reply <- fetchResult{slots: []domain.Slot{slotAt(day1, 9, true)}}
	time.Sleep(50 * time.Millisecond)
	snap := w.Snapshot()
	assert.Equal(t, StateSelectingSlot, snap.State)
	assert.Equal(t, fresh, snap.Slots)
}

func TestWizard_LastDispatchedRequestWins(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})
	require.NoError(t, w.SetTailor(7))

	// Three rapid date changes; answer the superseded fetches after the
	// final one, in scrambled order.
	days := []time.Time{
		time.Now().AddDate(0, 0, 1),
		time.Now().AddDate(0, 0, 2),
		time.Now().AddDate(0, 0, 3),
	}
	calls := make([]fetchCall, 0, len(days))
	for _, day := range days {
		require.NoError(t, w.SetDate(day))
		calls = append(calls, source.next(t))
	}

	final := []domain.Slot{slotAt(days[2], 14, true)}
	calls[1].reply <- fetchResult{slots: []domain.Slot{slotAt(days[1], 11, true)}}
	calls[2].reply <- fetchResult{slots: final}
	calls[0].reply <- fetchResult{slots: []domain.Slot{slotAt(days[0], 9, true)}}

	waitForState(t, w, StateSelectingSlot)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, final, w.Snapshot().Slots)
}

func TestWizard_SelectUnavailableSlotIsNoOp(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})
	day := time.Now().AddDate(0, 0, 1)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day))
	taken := slotAt(day, 10, false)
	free := slotAt(day, 11, true)
	source.next(t).reply <- fetchResult{slots: []domain.Slot{taken, free}}
	waitForState(t, w, StateSelectingSlot)

	err := w.SelectSlot(taken.StartTime)
	require.Error(t, err)
	assert.Empty(t, w.Snapshot().SelectedTime)
	assert.Equal(t, StateSelectingSlot, w.Snapshot().State)

	// A slot that was never loaded cannot be selected either.
	err = w.SelectSlot(slotAt(day, 15, true).StartTime)
	require.Error(t, err)
	assert.Empty(t, w.Snapshot().SelectedTime)

	require.NoError(t, w.SelectSlot(free.StartTime))
	snap := w.Snapshot()
	assert.Equal(t, StateConfirming, snap.State)
	assert.Equal(t, "11:00", snap.SelectedTime)
}

func TestWizard_DateChangeClearsSelection(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})
	day := time.Now().AddDate(0, 0, 1)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day))
	free := slotAt(day, 10, true)
	source.next(t).reply <- fetchResult{slots: []domain.Slot{free}}
	waitForState(t, w, StateSelectingSlot)
	require.NoError(t, w.SelectSlot(free.StartTime))

	require.NoError(t, w.SetDate(time.Now().AddDate(0, 0, 2)))
	snap := w.Snapshot()
	assert.Equal(t, StateLoadingSlots, snap.State)
	assert.Empty(t, snap.SelectedTime)
	assert.Empty(t, snap.Slots)
	source.next(t) // the pending fetch for the new date
}

func TestWizard_EmptyAvailabilityIsNotAnError(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(time.Now().AddDate(0, 0, 1)))
	source.next(t).reply <- fetchResult{slots: []domain.Slot{}}

	waitForState(t, w, StateSelectingSlot)
	snap := w.Snapshot()
	assert.Empty(t, snap.Slots)
	assert.Empty(t, snap.Error)
}

func TestWizard_SubmitConflictReturnsToSlotSelection(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	creator := &fakeCreator{err: util.NewConflict("Time slot already booked", nil)}
	w := newTestWizard(source, creator)
	day := time.Now().AddDate(0, 0, 1)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day))
	free := slotAt(day, 10, true)
	source.next(t).reply <- fetchResult{slots: []domain.Slot{free}}
	waitForState(t, w, StateSelectingSlot)
	require.NoError(t, w.SelectSlot(free.StartTime))

	_, err := w.Submit(context.Background(), domain.AppointmentTypeConsultation, "")
	require.Error(t, err)
	assert.True(t, util.IsConflict(err))

	// While the re-fetch is in flight the pre-conflict grid is stale and
	// must not be rendered.
	inflight := w.Snapshot()
	assert.Equal(t, StateLoadingSlots, inflight.State)
	assert.Empty(t, inflight.Slots)

	// The slot may have been taken concurrently, so availability is
	// re-fetched and the stale selection dropped.
	refetch := source.next(t)
	refetch.reply <- fetchResult{slots: []domain.Slot{slotAt(day, 11, true)}}
	waitForState(t, w, StateSelectingSlot)
	snap := w.Snapshot()
	assert.Empty(t, snap.SelectedTime)
	assert.NotEmpty(t, snap.Error)
}

func TestWizard_SubmitSuccessIsTerminal(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	creator := &fakeCreator{appt: &domain.Appointment{ID: 42}}
	w := newTestWizard(source, creator)
	day := time.Now().AddDate(0, 0, 1)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day))
	free := slotAt(day, 10, true)
	source.next(t).reply <- fetchResult{slots: []domain.Slot{free}}
	waitForState(t, w, StateSelectingSlot)
	require.NoError(t, w.SelectSlot(free.StartTime))

	appt, err := w.Submit(context.Background(), domain.AppointmentTypeFitting, "first fitting")
	require.NoError(t, err)
	require.Equal(t, int64(42), appt.ID)
	assert.Equal(t, StateSubmitted, w.Snapshot().State)

	// Terminal: further edits are rejected.
	assert.Error(t, w.SetDate(day))
	assert.Error(t, w.SetTailor(8))
}

func TestWizard_SubmitWithoutConfirmedSlot(t *testing.T) {
	t.Parallel()

	w := newTestWizard(newFakeSource(), &fakeCreator{})
	_, err := w.Submit(context.Background(), domain.AppointmentTypeConsultation, "")
	require.Error(t, err)
}

func TestWizard_DateValidation(t *testing.T) {
	t.Parallel()

	w := newTestWizard(newFakeSource(), &fakeCreator{})
	assert.Error(t, w.SetDate(time.Now().AddDate(0, 0, -1)), "past dates are rejected")
	assert.Error(t, w.SetDate(time.Now().AddDate(1, 0, 0)), "dates beyond the horizon are rejected")
	assert.NoError(t, w.SetDate(time.Now()), "today is allowed")
}

func TestWizard_TodayIsValidAcrossTimezones(t *testing.T) {
	t.Parallel()

	// Server clock sits west of UTC while the browser submits the date
	// as UTC midnight. Same calendar day, so it must be accepted.
	west := time.FixedZone("UTC-10", -10*60*60)
	now := time.Date(2026, 8, 27, 8, 0, 0, 0, west)
	w := NewWizard("tok", newFakeSource(), &fakeCreator{}, Options{
		BranchID:     1,
		FetchTimeout: time.Second,
		Now:          func() time.Time { return now },
	}, zap.NewNop())

	assert.NoError(t, w.SetDate(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)))
	assert.Error(t, w.SetDate(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)),
		"yesterday stays rejected")

	// Mirror case: server east of UTC, already past midnight locally.
	east := time.FixedZone("UTC+12", 12*60*60)
	w = NewWizard("tok", newFakeSource(), &fakeCreator{}, Options{
		BranchID:     1,
		FetchTimeout: time.Second,
		Now:          func() time.Time { return time.Date(2026, 8, 28, 1, 0, 0, 0, east) },
	}, zap.NewNop())
	assert.NoError(t, w.SetDate(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)))
}

func TestWizard_FetchFailureSurfacesAndIsRetryable(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(time.Now().AddDate(0, 0, 1)))
	source.next(t).reply <- fetchResult{err: util.NewUpstreamUnavailable(context.DeadlineExceeded)}

	waitForState(t, w, StateSelectingSlot)
	assert.NotEmpty(t, w.Snapshot().Error)

	// Retry button reloads availability for the same selection.
	require.NoError(t, w.Reload())
	retry := source.next(t)
	retry.reply <- fetchResult{slots: []domain.Slot{slotAt(time.Now().AddDate(0, 0, 1), 10, true)}}
	waitForState(t, w, StateSelectingSlot)
	assert.Empty(t, w.Snapshot().Error)
	assert.Len(t, w.Snapshot().Slots, 1)
}

func TestWizard_BackDropsSelection(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	w := newTestWizard(source, &fakeCreator{})
	day := time.Now().AddDate(0, 0, 1)

	require.NoError(t, w.SetTailor(7))
	require.NoError(t, w.SetDate(day))
	free := slotAt(day, 10, true)
	source.next(t).reply <- fetchResult{slots: []domain.Slot{free}}
	waitForState(t, w, StateSelectingSlot)
	require.NoError(t, w.SelectSlot(free.StartTime))

	w.Back()
	snap := w.Snapshot()
	assert.Equal(t, StateSelectingSlot, snap.State)
	assert.Empty(t, snap.SelectedTime)
	assert.Len(t, snap.Slots, 1, "loaded slots survive backward navigation")
}
