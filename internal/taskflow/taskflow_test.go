package taskflow

import (
	"testing"
	"time"

	"task-tracker-api/internal/models"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func due(days int) *time.Time {
	d := today.AddDate(0, 0, days)
	return &d
}

func titles(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestApply_FilterToday(t *testing.T) {
	tasks := []models.Task{
		{Title: "today", DueDate: due(0)},
		{Title: "tomorrow", DueDate: due(1)},
	}
	got := Apply(tasks, FilterToday, SortDueDate, today)
	require.Equal(t, []string{"today"}, titles(got))
}

func TestApply_FilterWeek(t *testing.T) {
	tasks := []models.Task{
		{Title: "soon", DueDate: due(3)},
		{Title: "next month", DueDate: due(40)},
	}
	got := Apply(tasks, FilterWeek, SortDueDate, today)
	require.Equal(t, []string{"soon"}, titles(got))
}

func TestApply_FilterWeekIncludesOverdue(t *testing.T) {
	tasks := []models.Task{
		{Title: "long overdue", DueDate: due(-20)},
		{Title: "due in a week", DueDate: due(7)},
		{Title: "too far", DueDate: due(8)},
	}
	got := Apply(tasks, FilterWeek, SortDueDate, today)
	require.Equal(t, []string{"long overdue", "due in a week"}, titles(got))
}

func TestApply_FilterLastWeek(t *testing.T) {
	tasks := []models.Task{
		{Title: "week overdue", DueDate: due(-7)},
		{Title: "barely overdue", DueDate: due(-1)},
		{Title: "future", DueDate: due(2)},
	}
	got := Apply(tasks, FilterLastWeek, SortDueDate, today)
	require.Equal(t, []string{"week overdue"}, titles(got))
}

func TestApply_FilterDone(t *testing.T) {
	tasks := []models.Task{
		{Title: "done", Status: models.StatusDone},
		{Title: "todo", Status: models.StatusTodo},
		{Title: "doing", Status: models.StatusDoing},
	}
	got := Apply(tasks, FilterDone, SortPriority, today)
	require.Equal(t, []string{"done"}, titles(got))
}

func TestApply_FilterSkipsUndatedTasks(t *testing.T) {
	tasks := []models.Task{
		{Title: "undated"},
		{Title: "dated", DueDate: due(1)},
	}
	got := Apply(tasks, FilterWeek, SortDueDate, today)
	require.Equal(t, []string{"dated"}, titles(got))
}

func TestApply_EmptyFilterDefaultsToWeek(t *testing.T) {
	tasks := []models.Task{
		{Title: "soon", DueDate: due(2)},
		{Title: "far", DueDate: due(30)},
	}
	got := Apply(tasks, "", "", today)
	require.Equal(t, []string{"soon"}, titles(got))
}

func TestApply_UnknownFilterKeepsEverything(t *testing.T) {
	tasks := []models.Task{
		{Title: "a", DueDate: due(100)},
		{Title: "b"},
	}
	got := Apply(tasks, "garbage", SortDueDate, today)
	require.Len(t, got, 2)
}

func TestApply_SortByDueDate(t *testing.T) {
	tasks := []models.Task{
		{Title: "later", DueDate: due(5)},
		{Title: "undated"},
		{Title: "sooner", DueDate: due(1)},
	}
	got := Apply(tasks, "all", SortDueDate, today)
	require.Equal(t, []string{"sooner", "later", "undated"}, titles(got))
}

func TestApply_SortByPriorityIsLexical(t *testing.T) {
	tasks := []models.Task{
		{Title: "m", Priority: models.PriorityMedium},
		{Title: "h", Priority: models.PriorityHigh},
		{Title: "l", Priority: models.PriorityLow},
	}
	got := Apply(tasks, "all", SortPriority, today)
	// Lexical label order, not severity.
	require.Equal(t, []string{"h", "l", "m"}, titles(got))
}

func TestApply_UnknownSortFallsBackToPriority(t *testing.T) {
	tasks := []models.Task{
		{Title: "m", Priority: models.PriorityMedium},
		{Title: "h", Priority: models.PriorityHigh},
	}
	got := Apply(tasks, "all", "created_at", today)
	require.Equal(t, []string{"h", "m"}, titles(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{Title: "b", DueDate: due(5)},
		{Title: "a", DueDate: due(1)},
	}
	_ = Apply(tasks, "all", SortDueDate, today)
	require.Equal(t, []string{"b", "a"}, titles(tasks))
}
