package model

import "time"

// Phase is the current mode of the countdown.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Fixed phase lengths in seconds.
const (
	FocusSeconds = 1500
	BreakSeconds = 300
)

// Transition messages shown when a phase ends.
const (
	FocusCompleteMessage = "Great session! Time for a quick break"
	BreakCompleteMessage = "Break over! Let's keep coding!"
)

// Seconds returns the full length of the phase.
func (phase Phase) Seconds() int {
	if phase == PhaseBreak {
		return BreakSeconds
	}
	return FocusSeconds
}

// Duration returns the full length of the phase as a time.Duration.
func (phase Phase) Duration() time.Duration {
	return time.Duration(phase.Seconds()) * time.Second
}

// Next returns the phase that follows this one.
func (phase Phase) Next() Phase {
	if phase == PhaseFocus {
		return PhaseBreak
	}
	return PhaseFocus
}

// Label returns the human-readable phase name.
func (phase Phase) Label() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Focus"
}

// CompletionMessage returns the notification text raised when the phase ends.
func (phase Phase) CompletionMessage() string {
	if phase == PhaseFocus {
		return FocusCompleteMessage
	}
	return BreakCompleteMessage
}
