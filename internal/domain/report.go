package domain

import "time"

// ClosedEntryRow is one closed time entry joined with its task and (optional)
// domain, the raw material for the report.
type ClosedEntryRow struct {
	StartTime       time.Time
	DurationSeconds int64
	TaskID          string
	TaskTitle       string
	DomainName      *string
	DomainColor     *string
}

// InterruptionRow is one interruption joined with its task title.
type InterruptionRow struct {
	OccurredAt time.Time
	Reason     string
	TaskTitle  string
}

// Report is the aggregated review, recomputed from scratch on every request.
type Report struct {
	TotalHours        float64
	SessionCount      int
	AvgSessionMinutes float64
	Domains           []DomainHours
	TopTasks          []TaskMinutes
	Reasons           []ReasonCount
	Recent            []InterruptionRow
}

// DomainHours is total focused hours for one domain. Entries on untriaged
// tasks land in the "unassigned" bucket with no color.
type DomainHours struct {
	Name     string
	ColorHex string
	Hours    float64
}

// TaskMinutes is total focused minutes for one task.
type TaskMinutes struct {
	TaskID  string
	Title   string
	Minutes float64
}

// ReasonCount is one bar of the interruption-reason histogram.
type ReasonCount struct {
	Reason string
	Count  int
}
