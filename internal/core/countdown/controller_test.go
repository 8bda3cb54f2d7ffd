package countdown

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"focusring/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualSource hands tick callbacks to the test instead of a real ticker.
type manualSource struct {
	mu       sync.Mutex
	fn       func()
	live     int
	starts   int
	interval time.Duration
}

func (source *manualSource) Start(interval time.Duration, fn func()) func() {
	source.mu.Lock()
	source.fn = fn
	source.live++
	source.starts++
	source.interval = interval
	source.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			source.mu.Lock()
			source.live--
			source.mu.Unlock()
		})
	}
}

// fire delivers n ticks through the most recently started callback, even if
// that source has since been stopped.
func (source *manualSource) fire(n int) {
	source.mu.Lock()
	fn := source.fn
	source.mu.Unlock()
	if fn == nil {
		return
	}
	for i := 0; i < n; i++ {
		fn()
	}
}

func (source *manualSource) liveCount() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.live
}

func newTestController(t *testing.T, config Config) (*Controller, *manualSource) {
	t.Helper()
	source := &manualSource{}
	config.TickSource = source
	controller := New(config)
	t.Cleanup(controller.Close)
	return controller, source
}

func snapshotOf(phase model.Phase, remaining int, running bool) model.Snapshot {
	return model.Snapshot{Phase: phase, RemainingSeconds: remaining, Running: running}
}

func TestNewStartsPausedInFocus(t *testing.T) {
	controller, source := newTestController(t, Config{})

	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())
	assert.False(t, controller.NotificationPending())
}

func TestToggleAcquiresAndReleasesTickSource(t *testing.T) {
	controller, source := newTestController(t, Config{})

	require.True(t, controller.Toggle())
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, true), controller.Snapshot())
	assert.Equal(t, 1, source.liveCount())
	assert.Equal(t, time.Second, source.interval)

	require.True(t, controller.Toggle())
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())
}

func TestTickDecrementsByOneWithoutChangingPhase(t *testing.T) {
	controller, source := newTestController(t, Config{})
	require.True(t, controller.Toggle())

	previous := controller.Snapshot()
	for i := 0; i < 100; i++ {
		source.fire(1)
		current := controller.Snapshot()
		assert.Equal(t, previous.RemainingSeconds-1, current.RemainingSeconds)
		assert.Equal(t, model.PhaseFocus, current.Phase)
		assert.True(t, current.Running)
		previous = current
	}
}

func TestFocusCompletesIntoPausedBreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	chime := NewMockChime(ctrl)
	notifier := NewMockNotifier(ctrl)

	chime.EXPECT().PlayChime().Times(1)
	notifier.EXPECT().Notify(model.FocusCompleteMessage, gomock.Any()).Times(1)

	controller, source := newTestController(t, Config{Chime: chime, Notifier: notifier})
	require.True(t, controller.Toggle())

	source.fire(1499)
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1, true), controller.Snapshot())

	source.fire(1)
	assert.Equal(t, snapshotOf(model.PhaseBreak, 300, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())
}

func TestBreakCompletesIntoPausedFocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	chime := NewMockChime(ctrl)
	notifier := NewMockNotifier(ctrl)

	chime.EXPECT().PlayChime().Times(2)
	gomock.InOrder(
		notifier.EXPECT().Notify(model.FocusCompleteMessage, gomock.Any()).
			Do(func(_ string, done func()) { done() }),
		notifier.EXPECT().Notify(model.BreakCompleteMessage, gomock.Any()).
			Do(func(_ string, done func()) { done() }),
	)

	controller, source := newTestController(t, Config{Chime: chime, Notifier: notifier})
	require.True(t, controller.Toggle())
	source.fire(1500)
	require.Equal(t, snapshotOf(model.PhaseBreak, 300, false), controller.Snapshot())

	require.True(t, controller.Toggle())
	source.fire(300)
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())
}

func TestTransitionHappensBeforeCollaboratorsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	chime := NewMockChime(ctrl)
	notifier := NewMockNotifier(ctrl)

	var controller *Controller
	chime.EXPECT().PlayChime().Do(func() {
		assert.Equal(t, snapshotOf(model.PhaseBreak, 300, false), controller.Snapshot())
	})
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(string, func()) {
		assert.Equal(t, snapshotOf(model.PhaseBreak, 300, false), controller.Snapshot())
		assert.True(t, controller.NotificationPending())
	})

	controller, source := newTestController(t, Config{Chime: chime, Notifier: notifier})
	require.True(t, controller.Toggle())
	source.fire(1500)
}

func TestResetDiscardsRunningProgress(t *testing.T) {
	controller, source := newTestController(t, Config{})
	require.True(t, controller.Toggle())
	source.fire(600)
	require.Equal(t, snapshotOf(model.PhaseFocus, 900, true), controller.Snapshot())

	require.True(t, controller.Reset())
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())
}

func TestResetFromBreakReturnsToFocus(t *testing.T) {
	controller, source := newTestController(t, Config{})
	require.True(t, controller.Toggle())
	source.fire(1500)
	require.True(t, controller.Toggle())
	source.fire(42)
	require.Equal(t, snapshotOf(model.PhaseBreak, 258, true), controller.Snapshot())

	require.True(t, controller.Reset())
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
}

func TestResetIsIdempotent(t *testing.T) {
	controller, source := newTestController(t, Config{})
	require.True(t, controller.Toggle())
	source.fire(10)

	require.True(t, controller.Reset())
	once := controller.Snapshot()
	require.True(t, controller.Reset())

	assert.Equal(t, once, controller.Snapshot())
	assert.Equal(t, model.InitialSnapshot(), controller.Snapshot())
}

func TestPauseBeforeAnyTickLeavesNoLiveSource(t *testing.T) {
	controller, source := newTestController(t, Config{})

	require.True(t, controller.Toggle())
	require.True(t, controller.Toggle())
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())

	source.fire(5)
	assert.Equal(t, snapshotOf(model.PhaseFocus, 1500, false), controller.Snapshot())
}

func TestStaleTicksAreDiscardedAfterRestart(t *testing.T) {
	controller, source := newTestController(t, Config{})

	require.True(t, controller.Toggle())
	source.mu.Lock()
	stale := source.fn
	source.mu.Unlock()
	require.True(t, controller.Toggle())
	require.True(t, controller.Toggle())

	stale()
	stale()
	assert.Equal(t, 1500, controller.Snapshot().RemainingSeconds)

	source.fire(1)
	assert.Equal(t, 1499, controller.Snapshot().RemainingSeconds)
	assert.Equal(t, 1, source.liveCount())
	assert.Equal(t, 2, source.starts)
}

func TestIntentsIgnoredWhileNotificationPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)

	var dismiss func()
	notifier.EXPECT().Notify(model.FocusCompleteMessage, gomock.Any()).
		Do(func(_ string, done func()) { dismiss = done })

	controller, source := newTestController(t, Config{Notifier: notifier})
	require.True(t, controller.Toggle())
	source.fire(1499)
	events := controller.Subscribe(8)
	source.fire(1)
	require.True(t, controller.NotificationPending())
	require.NotNil(t, dismiss)

	assert.False(t, controller.Toggle())
	assert.False(t, controller.Reset())
	assert.Equal(t, snapshotOf(model.PhaseBreak, 300, false), controller.Snapshot())
	assert.Equal(t, 0, source.liveCount())

	dismiss()
	assert.False(t, controller.NotificationPending())
	dismiss()
	assert.False(t, controller.NotificationPending())

	require.True(t, controller.Toggle())
	assert.Equal(t, snapshotOf(model.PhaseBreak, 300, true), controller.Snapshot())

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []EventType{
		EventTransition,
		EventIntentIgnored,
		EventIntentIgnored,
		EventNotificationDismissed,
		EventToggle,
	}, types)
}

func TestStaleDismissDoesNotClearNewerNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)

	var dismissals []func()
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		Do(func(_ string, done func()) { dismissals = append(dismissals, done) }).
		Times(2)

	controller, source := newTestController(t, Config{Notifier: notifier})
	require.True(t, controller.Toggle())
	source.fire(1500)
	dismissals[0]()
	require.True(t, controller.Toggle())
	source.fire(300)
	require.True(t, controller.NotificationPending())

	dismissals[0]()
	assert.True(t, controller.NotificationPending())
	dismissals[1]()
	assert.False(t, controller.NotificationPending())
}

func TestMissingCollaboratorsNeverBlockIntents(t *testing.T) {
	controller, source := newTestController(t, Config{})
	require.True(t, controller.Toggle())
	source.fire(1500)

	assert.False(t, controller.NotificationPending())
	assert.True(t, controller.Toggle())
	assert.Equal(t, snapshotOf(model.PhaseBreak, 300, true), controller.Snapshot())
}

func TestTransitionEventCarriesMessageAndNewState(t *testing.T) {
	controller, source := newTestController(t, Config{})
	events := controller.Subscribe(4)

	require.True(t, controller.Toggle())
	<-events
	source.fire(1)
	tickEvent := <-events
	assert.Equal(t, EventTick, tickEvent.Type)
	assert.Equal(t, 1499, tickEvent.Snapshot.RemainingSeconds)

	source.fire(1498)
	for len(events) > 0 {
		<-events
	}
	source.fire(1)

	transition := <-events
	assert.Equal(t, EventTransition, transition.Type)
	assert.Equal(t, model.PhaseFocus, transition.From)
	assert.Equal(t, model.FocusCompleteMessage, transition.Message)
	assert.Equal(t, snapshotOf(model.PhaseBreak, 300, false), transition.Snapshot)
}

func TestCloseReleasesSourceAndClosesObservers(t *testing.T) {
	controller, source := newTestController(t, Config{})
	events := controller.Subscribe(4)
	require.True(t, controller.Toggle())
	<-events

	controller.Close()
	controller.Close()

	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, 0, source.liveCount())

	source.fire(3)
	assert.Equal(t, 1500, controller.Snapshot().RemainingSeconds)
	assert.False(t, controller.Toggle())
	assert.False(t, controller.Reset())

	late := controller.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestInvariantsHoldUnderRandomIntents(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		Do(func(_ string, done func()) { done() }).
		AnyTimes()

	controller, source := newTestController(t, Config{Notifier: notifier})
	events := controller.Subscribe(4096)
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 20000; step++ {
		switch roll := rng.Intn(100); {
		case roll < 2:
			controller.Reset()
		case roll < 6:
			controller.Toggle()
		default:
			source.fire(1 + rng.Intn(120))
		}

		snapshot := controller.Snapshot()
		require.GreaterOrEqual(t, snapshot.RemainingSeconds, 0)
		require.LessOrEqual(t, snapshot.RemainingSeconds, snapshot.Phase.Seconds())
		require.LessOrEqual(t, source.liveCount(), 1)
		require.Equal(t, snapshot.Running, source.liveCount() == 1)

		for len(events) > 0 {
			event := <-events
			if event.Type == EventTransition {
				require.Equal(t, event.From.Next(), event.Snapshot.Phase)
				require.NotEqual(t, event.From, event.Snapshot.Phase)
				require.Equal(t, event.Snapshot.Phase.Seconds(), event.Snapshot.RemainingSeconds)
				require.False(t, event.Snapshot.Running)
			}
		}
	}
}
