package dto

import "time"

// TriageRequest is the JSON body for POST /tasks/{id}/triage.
type TriageRequest struct {
	Domain string `json:"domain" binding:"required,min=1,max=60"`
}

// InterruptionRequest is the JSON body for POST /tasks/{id}/interruptions.
type InterruptionRequest struct {
	Reason string  `json:"reason" binding:"required,min=1,max=120"`
	Notes  *string `json:"notes" binding:"omitempty,max=1000"`
}

// DomainResponse is the domain a task was triaged into.
type DomainResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
}

type TaskResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Status    string          `json:"status"`
	ParentID  *string         `json:"parent_id,omitempty"`
	IsTriaged bool            `json:"is_triaged"`
	Domain    *DomainResponse `json:"domain,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

// SyncResponse is returned by POST /sync on success.
type SyncResponse struct {
	Status      string `json:"status"`
	SyncedCount int    `json:"synced_count"`
}
