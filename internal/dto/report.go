package dto

import "time"

// ReportResponse is the aggregated weekly review.
type ReportResponse struct {
	TotalHours          float64                `json:"total_hours"`
	SessionCount        int                    `json:"session_count"`
	AvgSessionMinutes   float64                `json:"avg_session_minutes"`
	Domains             []DomainHoursResponse  `json:"domains"`
	TopTasks            []TaskMinutesResponse  `json:"top_tasks"`
	InterruptionReasons []ReasonCountResponse  `json:"interruption_reasons"`
	RecentInterruptions []InterruptionResponse `json:"recent_interruptions"`
}

type DomainHoursResponse struct {
	Name     string  `json:"name"`
	ColorHex string  `json:"color_hex,omitempty"`
	Hours    float64 `json:"hours"`
}

type TaskMinutesResponse struct {
	TaskID  string  `json:"task_id"`
	Title   string  `json:"title"`
	Minutes float64 `json:"minutes"`
}

type ReasonCountResponse struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type InterruptionResponse struct {
	OccurredAt time.Time `json:"occurred_at"`
	Reason     string    `json:"reason"`
	TaskTitle  string    `json:"task_title"`
}
