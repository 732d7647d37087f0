package domain

import "time"

// Domain entities: бизнес-объекты (истина).
// Не зависят от Gin, Postgres, Redis.

// Task mirrors one item from the external task provider. The provider's id is
// the primary key; stability across syncs is what makes the mirror work.
type Task struct {
	GoogleTaskID string
	Title        string
	Status       string
	ParentID     *string

	// Triage state. Owned locally, never touched by sync.
	DomainID  *int64
	IsTriaged bool

	CreatedAt time.Time
}

// TaskWithDomain is a task joined with the domain it was triaged into, if any.
type TaskWithDomain struct {
	Task
	Domain *FocusDomain
}
