package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
)

func seedTask(t *testing.T, tasks *fakeTaskRepo, id, title string) {
	t.Helper()
	if _, err := tasks.UpsertAll(context.Background(), []dom.Task{{GoogleTaskID: id, Title: title, Status: "needsAction"}}); err != nil {
		t.Fatalf("seed task: %v", err)
	}
}

func newTimerFixture() (*TimerService, *fakeTaskRepo, *fakeTimeEntryRepo, *fakeInterruptionRepo) {
	tasks := newFakeTaskRepo()
	entries := newFakeTimeEntryRepo(tasks)
	interruptions := newFakeInterruptionRepo(tasks)
	svc := NewTimerService(entries, interruptions, nil)
	return svc, tasks, entries, interruptions
}

func TestTimerStartIsIdempotent(t *testing.T) {
	svc, tasks, entries, _ := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	ctx := context.Background()
	if err := svc.Start(ctx, "g1"); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := svc.Start(ctx, "g1"); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if got := entries.openCount("g1"); got != 1 {
		t.Errorf("open entries after double start = %d, want 1", got)
	}
	if got := len(entries.entries); got != 1 {
		t.Errorf("total entries = %d, want 1", got)
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	svc, tasks, entries, _ := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	ctx := context.Background()
	if err := svc.Start(ctx, "g1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Stop(ctx, "g1"); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	closed := entries.entries[0]
	if err := svc.Stop(ctx, "g1"); err != nil {
		t.Fatalf("second stop: %v", err)
	}
	if got := entries.entries[0]; got != closed {
		t.Errorf("entry changed by redundant stop: %+v != %+v", got, closed)
	}
	if got := len(entries.entries); got != 1 {
		t.Errorf("total entries = %d, want 1", got)
	}
}

func TestTimerDurationDerivedFromTimestamps(t *testing.T) {
	svc, tasks, entries, _ := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	now := start
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	if err := svc.Start(ctx, "g1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	now = start.Add(1500 * time.Second)
	if err := svc.Stop(ctx, "g1"); err != nil {
		t.Fatalf("stop: %v", err)
	}

	e := entries.entries[0]
	if e.EndTime == nil {
		t.Fatal("entry not closed")
	}
	if e.DurationSeconds != 1500 {
		t.Errorf("duration = %d, want 1500", e.DurationSeconds)
	}
	// Recomputing from the stored timestamps must reproduce the stored value.
	if got := e.EndTime.Sub(e.StartTime); int64(got.Seconds()) != e.DurationSeconds {
		t.Errorf("recomputed duration %v != stored %d", got, e.DurationSeconds)
	}
}

func TestTimerNeverTwoOpenEntries(t *testing.T) {
	svc, tasks, entries, _ := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	ctx := context.Background()
	ops := []func() error{
		func() error { return svc.Start(ctx, "g1") },
		func() error { return svc.Start(ctx, "g1") },
		func() error { return svc.Stop(ctx, "g1") },
		func() error { return svc.Stop(ctx, "g1") },
		func() error { return svc.Start(ctx, "g1") },
		func() error { return svc.Stop(ctx, "g1") },
		func() error { return svc.Start(ctx, "g1") },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		if got := entries.openCount("g1"); got > 1 {
			t.Fatalf("after op %d: %d open entries, want at most 1", i, got)
		}
	}
}

func TestTimerStartUnknownTask(t *testing.T) {
	svc, _, _, _ := newTimerFixture()
	if err := svc.Start(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Start(unknown) = %v, want ErrNotFound", err)
	}
}

func TestLogInterruption(t *testing.T) {
	svc, tasks, _, interruptions := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	at := time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	notes := "school called"
	if err := svc.LogInterruption(context.Background(), "g1", "Family", &notes); err != nil {
		t.Fatalf("log interruption: %v", err)
	}
	if got := len(interruptions.rows); got != 1 {
		t.Fatalf("rows = %d, want 1", got)
	}
	row := interruptions.rows[0]
	if row.Reason != "Family" || !row.OccurredAt.Equal(at) || row.Notes == nil || *row.Notes != notes {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestLogInterruptionUnknownTask(t *testing.T) {
	svc, _, _, _ := newTimerFixture()
	if err := svc.LogInterruption(context.Background(), "missing", "Family", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("LogInterruption(unknown) = %v, want ErrNotFound", err)
	}
}

// Logging while a timer runs is allowed: the stop-log-start order is a UI
// convention, not a backend rule.
func TestLogInterruptionWhileRunning(t *testing.T) {
	svc, tasks, entries, interruptions := newTimerFixture()
	seedTask(t, tasks, "g1", "Write report")

	ctx := context.Background()
	if err := svc.Start(ctx, "g1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.LogInterruption(ctx, "g1", "Phone", nil); err != nil {
		t.Fatalf("log while running: %v", err)
	}
	if got := entries.openCount("g1"); got != 1 {
		t.Errorf("open entries = %d, want 1 (log must not touch the timer)", got)
	}
	if got := len(interruptions.rows); got != 1 {
		t.Errorf("rows = %d, want 1", got)
	}
}
