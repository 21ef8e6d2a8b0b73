package countdown

import (
	"fmt"
	"time"
)

// State represents the current engine mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateAlarming State = "alarming"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is an immutable view of the session at the moment of an event.
// Observers render from snapshots and never reach into engine internals.
type Snapshot struct {
	State     State
	Total     time.Duration
	Remaining time.Duration
	Label     string
	StartedAt time.Time
}

const (
	idleGlyph      = "⏱"
	menuLabelRunes = 15
	ellipsis       = "…"
)

// FormattedTime renders the remaining time as H:MM:SS once a whole hour
// remains, MM:SS otherwise.
func (snapshot Snapshot) FormattedTime() string {
	seconds := int(snapshot.Remaining / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	seconds = seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// MenuTitle renders the compact menu-bar text: a clock glyph when idle,
// otherwise the formatted time with the truncated task label if one is set.
func (snapshot Snapshot) MenuTitle() string {
	if snapshot.State == StateIdle {
		return idleGlyph
	}
	if snapshot.Label == "" {
		return snapshot.FormattedTime()
	}
	return snapshot.FormattedTime() + " · " + truncateLabel(snapshot.Label, menuLabelRunes)
}

// Progress reports elapsed fraction of the session, 0 when no session is set.
func (snapshot Snapshot) Progress() float64 {
	if snapshot.Total <= 0 {
		return 0
	}
	progress := float64(snapshot.Total-snapshot.Remaining) / float64(snapshot.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Elapsed returns how much of the session has already run.
func (snapshot Snapshot) Elapsed() time.Duration {
	if snapshot.Total <= snapshot.Remaining {
		return 0
	}
	return snapshot.Total - snapshot.Remaining
}

func truncateLabel(label string, limit int) string {
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit]) + ellipsis
}
