package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hackathon-backend/internal/config"
	"hackathon-backend/internal/jobs"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/repository/postgres"
	"hackathon-backend/internal/scheduler"
	"hackathon-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a single job and exit (mark-overdue-orders, send-return-reminders, all-nightly)")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hackathon Cron Service...")

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize dependencies
	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, cfg)

	// Single-job mode for manual runs and debugging
	if *runOnce != "" {
		runJobOnce(jobRunner, *runOnce)
		return
	}

	// Start the scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down cron service...")
	sched.Stop()
	logger.Info("Cron service stopped")
}

func runJobOnce(jr *jobs.JobRunner, jobName string) {
	logger.Info("Running single job", "job", jobName)

	switch jobName {
	case "mark-overdue-orders":
		jr.MarkOverdueOrders()
	case "send-return-reminders":
		jr.SendReturnReminders()
	case "all-nightly":
		jr.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		log.Fatalf("Unknown job: %s (valid: mark-overdue-orders, send-return-reminders, all-nightly)", jobName)
	}

	logger.Info("Job execution completed", "job", jobName)
}
