package reminder

import (
	"testing"
	"time"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func due(days int) *time.Time {
	d := today.AddDate(0, 0, days)
	return &d
}

func TestOverdueByOwner(t *testing.T) {
	tasks := []models.Task{
		{Title: "a1", UserID: "u-1", Status: models.StatusTodo, DueDate: due(-2)},
		{Title: "a2", UserID: "u-1", Status: models.StatusDoing, DueDate: due(-1)},
		{Title: "done", UserID: "u-1", Status: models.StatusDone, DueDate: due(-5)},
		{Title: "future", UserID: "u-1", Status: models.StatusTodo, DueDate: due(3)},
		{Title: "undated", UserID: "u-1", Status: models.StatusTodo},
		{Title: "b1", UserID: "u-2", Status: models.StatusTodo, DueDate: due(-1)},
		{Title: "clean", UserID: "u-3", Status: models.StatusTodo, DueDate: due(1)},
	}

	grouped := OverdueByOwner(tasks, today)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["u-1"], 2)
	require.Equal(t, "a1", grouped["u-1"][0].Title)
	require.Equal(t, "a2", grouped["u-1"][1].Title)
	require.Len(t, grouped["u-2"], 1)
	require.NotContains(t, grouped, "u-3")
}

func TestOverdueByOwner_DueTodayNotOverdue(t *testing.T) {
	grouped := OverdueByOwner([]models.Task{
		{UserID: "u-1", Status: models.StatusTodo, DueDate: due(0)},
	}, today)
	require.Empty(t, grouped)
}

func TestBody(t *testing.T) {
	body := Body([]models.Task{
		{Title: "Pay rent", DueDate: due(-3)},
		{Title: "Call bank", DueDate: due(-1)},
	})
	want := "These tasks are overdue:\n\n" +
		"- Pay rent (due 2026-03-07)\n" +
		"- Call bank (due 2026-03-09)\n"
	require.Equal(t, want, body)
}

type recordedMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []recordedMail
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, recordedMail{to: to, subject: subject, body: body})
	return nil
}

func TestWorkerRun(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.User{ID: "u-2", Username: "bob", Email: "bob@example.com", Password: "x"}).Error)

	seed := []models.Task{
		{ID: "t-1", Title: "Overdue A", UserID: "u-1", Status: models.StatusTodo, DueDate: due(-2)},
		{ID: "t-2", Title: "Overdue B", UserID: "u-1", Status: models.StatusDoing, DueDate: due(-1)},
		{ID: "t-3", Title: "On time", UserID: "u-2", Status: models.StatusTodo, DueDate: due(1)},
		{ID: "t-4", Title: "Finished", UserID: "u-2", Status: models.StatusDone, DueDate: due(-4)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	mailer := &fakeMailer{}
	w := NewWorker(db, mailer, nil, WorkerConfig{Interval: time.Hour})

	require.NoError(t, w.Run(today))

	// Only alice has overdue work; bob gets nothing.
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "alice@example.com", mailer.sent[0].to)
	require.Equal(t, Subject, mailer.sent[0].subject)
	require.Contains(t, mailer.sent[0].body, "- Overdue A (due 2026-03-08)")
	require.Contains(t, mailer.sent[0].body, "- Overdue B (due 2026-03-09)")
	require.NotContains(t, mailer.sent[0].body, "On time")
}

func TestWorkerRun_NoOverdueSendsNothing(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.Task{ID: "t-1", Title: "Future", UserID: "u-1", Status: models.StatusTodo, DueDate: due(5)}).Error)

	mailer := &fakeMailer{}
	w := NewWorker(db, mailer, nil, WorkerConfig{Interval: time.Hour})

	require.NoError(t, w.Run(today))
	require.Empty(t, mailer.sent)
}
