// Package engine assembles the booking core into one value. Transport is
// deliberately absent: an embedding layer (gRPC, HTTP, queue consumer) takes
// the Engine and exposes whichever operations it needs.
package engine

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/availability"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/billing"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/config"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository/postgres"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/security"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/service"
)

// Engine bundles the assembled services and shared capabilities.
type Engine struct {
	Store      *postgres.Store
	Calculator *billing.Calculator
	Resolver   *availability.Resolver
	ResetCodes *security.ResetCodeStore

	Email         service.EmailService
	Bookings      service.BookingService
	Tractors      service.TractorService
	Tracking      service.TrackingService
	Notifications service.NotificationService
}

// New wires the full engine against an open database handle. The handle's
// lifecycle stays with the caller.
func New(cfg *config.Config, db *sql.DB) (*Engine, error) {
	cancellationRate, err := decimal.NewFromString(cfg.Billing.CancellationFeeRate)
	if err != nil {
		return nil, fmt.Errorf("invalid cancellation fee rate %q: %w", cfg.Billing.CancellationFeeRate, err)
	}
	commissionRate, err := decimal.NewFromString(cfg.Billing.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate %q: %w", cfg.Billing.CommissionRate, err)
	}

	store := postgres.NewStore(db)
	calculator := billing.NewWithRates(cancellationRate, commissionRate, billing.MinimumChargeMinutes)
	resolver := availability.NewResolver(store.BookingRepository)
	resetCodes := security.NewResetCodeStore(time.Duration(cfg.Security.ResetCodeTTLMinutes) * time.Minute)

	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	return &Engine{
		Store:      store,
		Calculator: calculator,
		Resolver:   resolver,
		ResetCodes: resetCodes,
		Email:      emailSvc,
		Bookings: service.NewBookingService(
			store.BookingRepository,
			store.TractorRepository,
			store.UserRepository,
			store.PaymentRepository,
			store.NotificationRepository,
			emailSvc,
			resolver,
			calculator,
		),
		Tractors: service.NewTractorService(store.TractorRepository, store.UserRepository),
		Tracking: service.NewTrackingService(
			store.BookingRepository,
			store.TractorRepository,
			store.UserRepository,
			cfg.Dispatch.AverageSpeedKmh,
		),
		Notifications: service.NewNotificationService(store.NotificationRepository),
	}, nil
}
