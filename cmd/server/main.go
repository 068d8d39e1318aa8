package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/config"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/engine"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/jobs"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/logger"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting tractor booking engine...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Assemble the engine
	eng, err := engine.New(cfg, db)
	if err != nil {
		logger.Error("Failed to assemble engine", "error", err)
		log.Fatalf("Failed to assemble engine: %v", err)
	}
	logger.Info("Engine assembled",
		"commission_rate", cfg.Billing.CommissionRate,
		"cancellation_fee_rate", cfg.Billing.CancellationFeeRate,
		"average_speed_kmh", cfg.Dispatch.AverageSpeedKmh)

	// Initialize Job Runner and Scheduler
	jobServices := &jobs.Services{
		Email: eng.Email,
	}
	jobRunner := jobs.NewJobRunner(db, eng.Store, jobServices, eng.ResetCodes, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	logger.Info("Engine is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()
	logger.Info("Engine stopped. Goodbye!")
}
