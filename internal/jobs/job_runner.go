package jobs

import (
	"database/sql"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/config"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/logger"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository/postgres"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/security"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db         *sql.DB
	store      *postgres.Store
	services   *Services
	resetCodes *security.ResetCodeStore
	config     *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, resetCodes *security.ResetCodeStore, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:         db,
		store:      store,
		services:   services,
		resetCodes: resetCodes,
		config:     cfg,
	}
}

// Config exposes the runner's configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
