package service

import (
	"context"
	"sort"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
	"github.com/scr1b3s/taskmaster/internal/repo"

	"golang.org/x/sync/singleflight"

	"github.com/scr1b3s/taskmaster/internal/cache"
)

const (
	topTasksLimit            = 5
	recentInterruptionsLimit = 10
	unassignedBucket         = "unassigned"
)

// ReportService computes the weekly-review aggregates. Everything is
// recomputed from the raw rows on each request; with a single user and a
// bounded history there is nothing worth materializing.
type ReportService struct {
	repo  repo.ReportRepo
	cache *cache.ViewCache
	sf    singleflight.Group
}

// NewReportService creates a ReportService. If c is nil, caching is disabled.
func NewReportService(r repo.ReportRepo, c *cache.ViewCache) *ReportService {
	return &ReportService{repo: r, cache: c}
}

// Report returns the aggregated statistics over all closed entries and
// interruptions.
func (s *ReportService) Report(ctx context.Context) (dom.Report, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("report", func() (interface{}, error) {
			if rep, err := s.cache.GetReport(ctx); err == nil && rep != nil {
				return *rep, nil
			}
			rep, err := s.build(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetReport(ctx, rep)
			return rep, nil
		})
		if err != nil {
			return dom.Report{}, err
		}
		return v.(dom.Report), nil
	}
	return s.build(ctx)
}

func (s *ReportService) build(ctx context.Context) (dom.Report, error) {
	entries, err := s.repo.ClosedEntries(ctx)
	if err != nil {
		return dom.Report{}, err
	}
	interruptions, err := s.repo.Interruptions(ctx)
	if err != nil {
		return dom.Report{}, err
	}
	return buildReport(entries, interruptions), nil
}

// buildReport folds the raw rows into the report. Pure, so the math is
// checkable without a store.
func buildReport(entries []dom.ClosedEntryRow, interruptions []dom.InterruptionRow) dom.Report {
	var rep dom.Report

	var totalSeconds int64
	domainSeconds := map[string]int64{}
	domainColor := map[string]string{}
	taskSeconds := map[string]int64{}
	taskTitle := map[string]string{}
	for _, e := range entries {
		totalSeconds += e.DurationSeconds

		name := unassignedBucket
		if e.DomainName != nil {
			name = *e.DomainName
			if e.DomainColor != nil {
				domainColor[name] = *e.DomainColor
			}
		}
		domainSeconds[name] += e.DurationSeconds

		taskSeconds[e.TaskID] += e.DurationSeconds
		taskTitle[e.TaskID] = e.TaskTitle
	}

	rep.SessionCount = len(entries)
	rep.TotalHours = float64(totalSeconds) / 3600
	if rep.SessionCount > 0 {
		rep.AvgSessionMinutes = float64(totalSeconds) / 60 / float64(rep.SessionCount)
	}

	for name, secs := range domainSeconds {
		rep.Domains = append(rep.Domains, dom.DomainHours{
			Name:     name,
			ColorHex: domainColor[name],
			Hours:    float64(secs) / 3600,
		})
	}
	sort.Slice(rep.Domains, func(i, j int) bool {
		if rep.Domains[i].Hours != rep.Domains[j].Hours {
			return rep.Domains[i].Hours > rep.Domains[j].Hours
		}
		return rep.Domains[i].Name < rep.Domains[j].Name
	})

	for id, secs := range taskSeconds {
		rep.TopTasks = append(rep.TopTasks, dom.TaskMinutes{
			TaskID:  id,
			Title:   taskTitle[id],
			Minutes: float64(secs) / 60,
		})
	}
	// Ties break on task id so the ranking is stable across runs.
	sort.Slice(rep.TopTasks, func(i, j int) bool {
		if rep.TopTasks[i].Minutes != rep.TopTasks[j].Minutes {
			return rep.TopTasks[i].Minutes > rep.TopTasks[j].Minutes
		}
		return rep.TopTasks[i].TaskID < rep.TopTasks[j].TaskID
	})
	if len(rep.TopTasks) > topTasksLimit {
		rep.TopTasks = rep.TopTasks[:topTasksLimit]
	}

	reasonCount := map[string]int{}
	for _, i := range interruptions {
		reasonCount[i.Reason]++
	}
	for reason, n := range reasonCount {
		rep.Reasons = append(rep.Reasons, dom.ReasonCount{Reason: reason, Count: n})
	}
	sort.Slice(rep.Reasons, func(i, j int) bool {
		if rep.Reasons[i].Count != rep.Reasons[j].Count {
			return rep.Reasons[i].Count > rep.Reasons[j].Count
		}
		return rep.Reasons[i].Reason < rep.Reasons[j].Reason
	})

	rep.Recent = append(rep.Recent, interruptions...)
	sort.Slice(rep.Recent, func(i, j int) bool {
		return rep.Recent[i].OccurredAt.After(rep.Recent[j].OccurredAt)
	})
	if len(rep.Recent) > recentInterruptionsLimit {
		rep.Recent = rep.Recent[:recentInterruptionsLimit]
	}

	return rep
}
