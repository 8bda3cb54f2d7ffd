package model

import "fmt"

// Snapshot is a read-only copy of the countdown state.
type Snapshot struct {
	Phase            Phase
	RemainingSeconds int
	Running          bool
}

// InitialSnapshot returns the state every countdown starts and resets to.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Phase:            PhaseFocus,
		RemainingSeconds: FocusSeconds,
		Running:          false,
	}
}

// DisplayText formats the remaining time as mm:ss.
func (snapshot Snapshot) DisplayText() string {
	return FormatSeconds(snapshot.RemainingSeconds)
}

// Progress returns the elapsed fraction of the current phase in [0,1].
func (snapshot Snapshot) Progress() float64 {
	total := snapshot.Phase.Seconds()
	if total <= 0 {
		return 1
	}
	progress := float64(total-snapshot.RemainingSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// ShowFocusStatus reports whether a focus interval is actively counting down.
func (snapshot Snapshot) ShowFocusStatus() bool {
	return snapshot.Running && snapshot.Phase == PhaseFocus
}

// String renders the snapshot for log lines.
func (snapshot Snapshot) String() string {
	state := "paused"
	if snapshot.Running {
		state = "running"
	}
	return fmt.Sprintf("%s %s (%s)", snapshot.Phase.Label(), snapshot.DisplayText(), state)
}

// FormatSeconds renders seconds as two-digit padded mm:ss.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
