// Package taskflow selects and orders an already-fetched task collection.
// It is a pure, in-memory pass: handlers fetch the owner's tasks and hand
// them here together with the raw filter/sort query parameters.
package taskflow

import (
	"sort"
	"time"

	"task-tracker-api/internal/models"
)

// Recognized filter keywords. Anything else leaves the collection as-is.
const (
	FilterToday    = "today"
	FilterWeek     = "week"
	FilterLastWeek = "last_week"
	FilterDone     = "done"
)

// Recognized sort keys.
const (
	SortDueDate  = "due_date"
	SortPriority = "priority"
)

// Defaults applied when the query parameter is absent.
const (
	DefaultFilter = FilterWeek
	DefaultSort   = SortDueDate
)

// Apply filters and sorts tasks. An empty filter defaults to "week"; an
// unrecognized one applies no filtering. An empty sort defaults to
// "due_date"; an unrecognized one falls back to the priority ordering.
// Apply never fails and never mutates the input slice.
func Apply(tasks []models.Task, filter, sortKey string, today time.Time) []models.Task {
	if filter == "" {
		filter = DefaultFilter
	}
	if sortKey == "" {
		sortKey = DefaultSort
	}

	out := filterTasks(tasks, filter, models.DateOf(today))

	switch sortKey {
	case SortDueDate:
		sortByDueDate(out)
	default:
		sortByPriority(out)
	}
	return out
}

func filterTasks(tasks []models.Task, filter string, today time.Time) []models.Task {
	var keep func(models.Task) bool

	switch filter {
	case FilterToday:
		keep = func(t models.Task) bool {
			return t.DueDate != nil && models.DateOf(*t.DueDate).Equal(today)
		}
	case FilterWeek:
		// Everything due within the next 7 days, including tasks that
		// are already overdue. Not a strict calendar-week window.
		cutoff := today.AddDate(0, 0, 7)
		keep = func(t models.Task) bool {
			return t.DueDate != nil && !models.DateOf(*t.DueDate).After(cutoff)
		}
	case FilterLastWeek:
		// Tasks overdue by more than a week.
		cutoff := today.AddDate(0, 0, -7)
		keep = func(t models.Task) bool {
			return t.DueDate != nil && !models.DateOf(*t.DueDate).After(cutoff)
		}
	case FilterDone:
		keep = func(t models.Task) bool { return t.Status == models.StatusDone }
	default:
		keep = func(models.Task) bool { return true }
	}

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// sortByDueDate orders ascending by due date. Tasks without a due date
// sort after all dated tasks; ties keep their input order.
func sortByDueDate(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// sortByPriority orders ascending by the stored priority label. The
// ordering is lexical (high, low, medium), not by severity.
func sortByPriority(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})
}
