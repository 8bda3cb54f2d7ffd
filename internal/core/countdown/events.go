package countdown

import (
	"time"

	"focusring/internal/core/model"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventTick                  EventType = "tick"
	EventToggle                EventType = "toggle"
	EventReset                 EventType = "reset"
	EventTransition            EventType = "transition"
	EventNotificationDismissed EventType = "notification_dismissed"
	EventIntentIgnored         EventType = "intent_ignored"
)

// Event represents a Controller update for observers.
type Event struct {
	Type     EventType
	Snapshot model.Snapshot
	// From is the phase that ended; set only for EventTransition.
	From    model.Phase
	Message string
	At      time.Time
}
