package main

import (
	"context"
	"log"
	"time"

	"task-tracker-api/internal/config"
	"task-tracker-api/internal/database"
	"task-tracker-api/internal/handlers"
	"task-tracker-api/internal/logger"
	"task-tracker-api/internal/reminder"
	"task-tracker-api/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	zlog := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	defer zlog.Sync()

	// Init database
	database.InitDB(cfg.DBPath)

	handlers.SetStatsCacheTTL(cfg.StatsCacheTTL)

	// Background reminder pass: selects overdue tasks per owner and hands
	// them to the mail transport.
	if cfg.ReminderEnabled {
		worker := reminder.NewWorker(
			database.GetDB(),
			&reminder.LogMailer{Logger: zlog},
			zlog.Named("reminder"),
			reminder.WorkerConfig{Interval: cfg.ReminderInterval},
		)
		worker.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			worker.Stop(ctx)
		}()
	}

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  POST   /api/tasks")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  PATCH  /api/tasks/:id/status")
	log.Println("  DELETE /api/tasks/:id")
	log.Println("  GET    /api/stats")
	log.Println("  GET    /api/stats/weekly")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
