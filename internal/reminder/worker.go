package reminder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-tracker-api/internal/models"
)

// WorkerConfig controls how often the reminder pass runs.
type WorkerConfig struct {
	Interval time.Duration
}

// Worker periodically scans all tasks for overdue ones and hands each
// owner's batch to the mailer.
type Worker struct {
	db     *gorm.DB
	mailer Mailer
	logger *zap.Logger
	cron   *cron.Cron
	cfg    WorkerConfig
}

func NewWorker(db *gorm.DB, mailer Mailer, logger *zap.Logger, cfg WorkerConfig) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Worker{
		db:     db,
		mailer: mailer,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = w.cron.AddFunc(schedule, func() {
		if err := w.Run(time.Now()); err != nil {
			w.logger.Error("reminder pass failed", zap.Error(err))
		}
	})

	return w
}

// Start launches the cron scheduler.
func (w *Worker) Start() {
	w.cron.Start()
	w.logger.Info("reminder worker started", zap.Duration("interval", w.cfg.Interval))
}

// Stop gracefully stops the scheduler, waiting for a running pass.
func (w *Worker) Stop(ctx context.Context) {
	stopCtx := w.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	w.logger.Info("reminder worker stopped")
}

// Run executes one reminder pass: fetch overdue candidates across all
// users, group them by owner, and send one mail per owner. Owners are
// processed in sorted order so runs are deterministic.
func (w *Worker) Run(now time.Time) error {
	start := time.Now()
	today := models.DateOf(now)

	var candidates []models.Task
	err := w.db.
		Where("due_date < ? AND status IN ?", today, []models.TaskStatus{models.StatusTodo, models.StatusDoing}).
		Order("due_date asc").
		Find(&candidates).Error
	if err != nil {
		return fmt.Errorf("fetch overdue candidates: %w", err)
	}

	grouped := OverdueByOwner(candidates, now)

	owners := make([]string, 0, len(grouped))
	for id := range grouped {
		owners = append(owners, id)
	}
	sort.Strings(owners)

	sent := 0
	for _, ownerID := range owners {
		tasks := grouped[ownerID]

		var owner models.User
		if err := w.db.Where("id = ?", ownerID).First(&owner).Error; err != nil {
			w.logger.Warn("skipping reminder, owner lookup failed",
				zap.String("user_id", ownerID), zap.Error(err))
			continue
		}

		if err := w.mailer.Send(owner.Email, Subject, Body(tasks)); err != nil {
			w.logger.Warn("reminder send failed",
				zap.String("user_id", ownerID), zap.Error(err))
			continue
		}
		sent++
	}

	w.logger.Info("reminder pass finished",
		zap.Int("overdue_tasks", len(candidates)),
		zap.Int("owners_notified", sent),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
