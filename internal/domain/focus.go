package domain

import "time"

// FocusDomain is a user-defined life area ("Work", "Personal") tasks are
// triaged into. Immutable once created.
type FocusDomain struct {
	ID       int64
	Name     string
	ColorHex string
}

// TimeEntry is one focus session against a task. EndTime is nil while the
// session is running; DurationSeconds is authoritative only once it is set.
type TimeEntry struct {
	ID              int64
	TaskID          string
	StartTime       time.Time
	EndTime         *time.Time
	DurationSeconds int64

	// Reserved for Pomodoro-completion semantics; no operation sets it yet.
	CompletedCycle bool
}

// Interruption records why a focus session was stopped.
type Interruption struct {
	ID         int64
	TaskID     string
	OccurredAt time.Time
	Reason     string
	Notes      *string
}

// DurationSeconds returns the whole-seconds duration between start and end,
// truncated. Recomputing it from stored timestamps must reproduce the stored
// value on any closed entry.
func DurationSeconds(start, end time.Time) int64 {
	return int64(end.Sub(start).Seconds())
}
