package countdown

import (
	"log"
	"sync"
	"time"

	"focusring/internal/core/model"
)

//go:generate mockgen -source=controller.go -destination=mock_collaborators_test.go -package=countdown

// Chime plays the phase transition sound. Implementations handle their own
// failures; the controller never observes the outcome.
type Chime interface {
	PlayChime()
}

// Notifier presents a transition message to the user. done must be called
// once the user has dismissed the message.
type Notifier interface {
	Notify(message string, done func())
}

// Config contains runtime options for Controller.
type Config struct {
	TickInterval time.Duration
	TickSource   TickSource
	Chime        Chime
	Notifier     Notifier
}

// Controller is the focus/break state machine driven by a single tick source.
type Controller struct {
	mu         sync.Mutex
	options    Config
	phase      model.Phase
	remaining  int
	running    bool
	generation uint64
	stopTick   func()
	noticeSeq  uint64
	pending    uint64
	closed     bool
	events     []chan Event
}

// New creates a Controller in the initial paused focus state.
func New(options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.TickSource == nil {
		options.TickSource = NewTickerSource(nil)
	}

	initial := model.InitialSnapshot()
	return &Controller{
		options:   options,
		phase:     initial.Phase,
		remaining: initial.RemainingSeconds,
		running:   initial.Running,
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Snapshot returns a consistent copy of the current state.
func (controller *Controller) Snapshot() model.Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// NotificationPending reports whether a transition message awaits dismissal.
func (controller *Controller) NotificationPending() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.pending != 0
}

// Toggle starts or pauses the countdown. It returns false when the intent
// was ignored because a transition message is still pending or the
// controller is closed.
func (controller *Controller) Toggle() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.acceptIntentLocked("toggle") {
		return false
	}

	if controller.running {
		controller.running = false
		controller.releaseTickLocked()
	} else {
		controller.running = true
		controller.acquireTickLocked()
	}

	controller.emitLocked(controller.eventLocked(EventToggle))
	return true
}

// Reset returns to a paused, full-length focus phase.
func (controller *Controller) Reset() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.acceptIntentLocked("reset") {
		return false
	}

	controller.running = false
	controller.releaseTickLocked()
	controller.phase = model.PhaseFocus
	controller.remaining = controller.phase.Seconds()

	controller.emitLocked(controller.eventLocked(EventReset))
	return true
}

// Close stops the tick source and closes observers. Further intents are
// ignored.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.running = false
	controller.releaseTickLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) tick(generation uint64) {
	controller.mu.Lock()
	if controller.closed || !controller.running || generation != controller.generation {
		controller.mu.Unlock()
		return
	}

	if controller.remaining > 0 {
		controller.remaining--
	}
	if controller.remaining > 0 {
		controller.emitLocked(controller.eventLocked(EventTick))
		controller.mu.Unlock()
		return
	}

	from := controller.phase
	message := from.CompletionMessage()
	controller.running = false
	controller.releaseTickLocked()
	controller.phase = from.Next()
	controller.remaining = controller.phase.Seconds()

	chime := controller.options.Chime
	notifier := controller.options.Notifier
	var done func()
	if notifier != nil {
		controller.noticeSeq++
		notice := controller.noticeSeq
		controller.pending = notice
		done = func() {
			controller.dismiss(notice)
		}
	}

	event := controller.eventLocked(EventTransition)
	event.From = from
	event.Message = message
	controller.emitLocked(event)
	controller.mu.Unlock()

	if chime != nil {
		chime.PlayChime()
	}
	if notifier != nil {
		notifier.Notify(message, done)
	}
}

func (controller *Controller) dismiss(notice uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.pending != notice {
		return
	}
	controller.pending = 0
	controller.emitLocked(controller.eventLocked(EventNotificationDismissed))
}

func (controller *Controller) acceptIntentLocked(intent string) bool {
	if controller.closed {
		return false
	}
	if controller.pending == 0 {
		return true
	}
	log.Printf("countdown: %s ignored while transition message is pending", intent)
	event := controller.eventLocked(EventIntentIgnored)
	event.Message = intent
	controller.emitLocked(event)
	return false
}

// acquireTickLocked starts a fresh tick source. Any previous source is
// released first so at most one is ever live.
func (controller *Controller) acquireTickLocked() {
	controller.releaseTickLocked()
	controller.generation++
	generation := controller.generation
	controller.stopTick = controller.options.TickSource.Start(controller.options.TickInterval, func() {
		controller.tick(generation)
	})
}

// releaseTickLocked stops the live tick source. Callbacks already in flight
// are discarded by the generation check in tick.
func (controller *Controller) releaseTickLocked() {
	controller.generation++
	if controller.stopTick == nil {
		return
	}
	controller.stopTick()
	controller.stopTick = nil
}

func (controller *Controller) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Phase:            controller.phase,
		RemainingSeconds: controller.remaining,
		Running:          controller.running,
	}
}

func (controller *Controller) eventLocked(eventType EventType) Event {
	return Event{
		Type:     eventType,
		Snapshot: controller.snapshotLocked(),
		At:       time.Now(),
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
