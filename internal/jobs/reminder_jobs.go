package jobs

import (
	"context"
	"time"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/logger"
)

// SendReturnReminders emails customers whose bookings end within the
// configured lookahead. The reminder flag is flipped first so a crashed run
// never double-sends; a booking at most receives one reminder.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(time.Duration(jr.config.Reminder.LookaheadMinutes) * time.Minute)

		bookings, err := jr.store.BookingRepository.ListDueForReminder(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list bookings due for reminder", "error", err)
			return
		}

		count := 0
		for i := range bookings {
			booking := &bookings[i]

			claimed, err := jr.store.BookingRepository.MarkReminderSent(ctx, booking.ID)
			if err != nil {
				logger.Error("Failed to mark reminder sent",
					"booking_id", booking.ID,
					"error", err)
				continue
			}
			if !claimed {
				// Another runner got there first.
				continue
			}

			customer, err := jr.store.UserRepository.GetByID(ctx, booking.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder",
					"booking_id", booking.ID,
					"customer_id", booking.CustomerID,
					"error", err)
				continue
			}
			tractor, err := jr.store.TractorRepository.GetByID(ctx, booking.TractorID)
			if err != nil {
				logger.Error("Failed to load tractor for reminder",
					"booking_id", booking.ID,
					"tractor_id", booking.TractorID,
					"error", err)
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, customer.Email, customer.Name, tractor.Name, booking.Window.EndAt); err != nil {
				logger.Error("Failed to send return reminder email",
					"booking_id", booking.ID,
					"customer_id", booking.CustomerID,
					"email", customer.Email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent return reminder",
				"booking_id", booking.ID,
				"customer_id", booking.CustomerID,
				"end_at", booking.Window.EndAt)
		}

		logger.Info("Return reminder sweep finished",
			"candidates", len(bookings),
			"sent", count)
	})
}

// PruneResetCodes drops expired password reset codes from memory
func (jr *JobRunner) PruneResetCodes() {
	jr.runWithRecovery("PruneResetCodes", func() {
		removed := jr.resetCodes.Prune(time.Now())
		if removed > 0 {
			logger.Info("Pruned expired reset codes", "removed", removed)
		}
	})
}
