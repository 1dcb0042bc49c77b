// Package reminder selects overdue tasks for notification and runs the
// periodic job that hands them to a mail transport.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"task-tracker-api/internal/models"
)

// Subject is the subject line used for every reminder mail.
const Subject = "You have overdue tasks"

const dueFormat = "2006-01-02"

// OverdueByOwner scans tasks and groups the overdue ones (due before
// today, status todo or doing) by owning user. Input order is preserved
// within each group; owners without overdue tasks have no entry.
func OverdueByOwner(tasks []models.Task, today time.Time) map[string][]models.Task {
	day := models.DateOf(today)
	grouped := make(map[string][]models.Task)
	for _, t := range tasks {
		if t.Status != models.StatusTodo && t.Status != models.StatusDoing {
			continue
		}
		if t.DueDate == nil || !models.DateOf(*t.DueDate).Before(day) {
			continue
		}
		grouped[t.UserID] = append(grouped[t.UserID], t)
	}
	return grouped
}

// Body renders the mail body for one owner's overdue tasks, one line per
// task.
func Body(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("These tasks are overdue:\n\n")
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format(dueFormat)
		}
		fmt.Fprintf(&b, "- %s (due %s)\n", t.Title, due)
	}
	return b.String()
}
