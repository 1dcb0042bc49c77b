// Package stats computes per-user completion statistics and the weekly
// productivity series. All functions are pure, single-pass computations
// over an already-fetched task collection.
package stats

import (
	"math"
	"sort"
	"time"

	"task-tracker-api/internal/models"
)

const dayFormat = "2006-01-02"

// StatusCount is one by-status breakdown entry.
type StatusCount struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
}

// PriorityCount is one by-priority breakdown entry.
type PriorityCount struct {
	Priority models.TaskPriority `json:"priority"`
	Count    int                 `json:"count"`
}

// CompletionStats summarizes how much of a user's task set is done.
type CompletionStats struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	Open           int             `json:"open"`
	CompletionRate float64         `json:"completion_rate"`
	ByStatus       []StatusCount   `json:"by_status"`
	ByPriority     []PriorityCount `json:"by_priority"`
}

// DayCount is one day of the productivity series.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ProductivitySeries is the trailing 7-day completion histogram. Fake is
// true when no real completion fell in the window and the series is the
// synthetic demo dataset.
type ProductivitySeries struct {
	Result []DayCount `json:"result"`
	Fake   bool       `json:"fake"`
}

var statusOrder = []models.TaskStatus{models.StatusTodo, models.StatusDoing, models.StatusDone}
var priorityOrder = []models.TaskPriority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// Completion aggregates counts, the completion rate, and the by-status /
// by-priority breakdowns for one user's tasks. Zero tasks is a valid
// input: all counts zero, rate zero.
func Completion(tasks []models.Task) CompletionStats {
	byStatus := make(map[models.TaskStatus]int)
	byPriority := make(map[models.TaskPriority]int)
	completed := 0

	for _, t := range tasks {
		byStatus[t.Status]++
		byPriority[t.Priority]++
		if t.Status == models.StatusDone {
			completed++
		}
	}

	total := len(tasks)
	var rate float64
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*1000) / 10
	}

	s := CompletionStats{
		Total:          total,
		Completed:      completed,
		Open:           total - completed,
		CompletionRate: rate,
		ByStatus:       make([]StatusCount, 0, len(byStatus)),
		ByPriority:     make([]PriorityCount, 0, len(byPriority)),
	}
	for _, st := range statusOrder {
		if n := byStatus[st]; n > 0 {
			s.ByStatus = append(s.ByStatus, StatusCount{Status: st, Count: n})
		}
	}
	for _, p := range priorityOrder {
		if n := byPriority[p]; n > 0 {
			s.ByPriority = append(s.ByPriority, PriorityCount{Priority: p, Count: n})
		}
	}
	return s
}

// WeeklyProductivity counts completions per calendar day over the window
// [today-6d, today]. Days without completions are omitted. When nothing
// real falls in the window the synthetic series takes its place, marked
// with Fake so consumers can tell placeholder data apart.
func WeeklyProductivity(tasks []models.Task, today time.Time) ProductivitySeries {
	day := models.DateOf(today)
	start := day.AddDate(0, 0, -6)

	counts := make(map[string]int)
	for _, t := range tasks {
		if t.Status != models.StatusDone || t.CompletedAt == nil {
			continue
		}
		d := models.DateOf(*t.CompletedAt)
		if d.Before(start) || d.After(day) {
			continue
		}
		counts[d.Format(dayFormat)]++
	}

	result := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		result = append(result, DayCount{Day: d, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day < result[j].Day })

	if len(result) > 0 {
		return ProductivitySeries{Result: result, Fake: false}
	}
	return ProductivitySeries{Result: syntheticSeries(day), Fake: true}
}

// syntheticSeries is the demo/empty-state dataset: today first, walking
// backwards one day at a time with counts cycling 1, 2, 3.
func syntheticSeries(day time.Time) []DayCount {
	result := make([]DayCount, 0, 7)
	for i := 0; i < 7; i++ {
		result = append(result, DayCount{
			Day:   day.AddDate(0, 0, -i).Format(dayFormat),
			Count: i%3 + 1,
		})
	}
	return result
}
