package model

import "time"

// Outcome describes how a session ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeStopped   Outcome = "stopped"
)

// SessionRecord is one finished countdown as stored in the history log.
type SessionRecord struct {
	ID        int64
	Label     string
	Total     time.Duration
	Elapsed   time.Duration
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   Outcome
}
