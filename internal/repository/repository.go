package repository

import (
	"context"
	"time"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type TractorRepository interface {
	Create(ctx context.Context, tractor *domain.Tractor) error
	GetByID(ctx context.Context, id int32) (*domain.Tractor, error)
	Update(ctx context.Context, tractor *domain.Tractor) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Tractor, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tractor, int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int32) error
	ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByTractor(ctx context.Context, tractorID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)

	// CountApprovedOverlapping counts bookings on the tractor whose approval
	// status is APPROVED and whose window overlaps the given one, excluding
	// excludeBookingID (0 excludes nothing).
	CountApprovedOverlapping(ctx context.Context, tractorID int32, window domain.Window, excludeBookingID int32) (int32, error)

	// LatestByTractor returns the most recently created booking for a tractor.
	LatestByTractor(ctx context.Context, tractorID int32) (*domain.Booking, error)

	// ListDueForReminder returns bookings whose window ends before the cutoff,
	// are still in an active status, and have not had a reminder sent.
	ListDueForReminder(ctx context.Context, endsBefore time.Time) ([]domain.Booking, error)

	// MarkReminderSent flips the one-way reminder flag. It reports false when
	// the flag was already set, making the sweep safe to retry.
	MarkReminderSent(ctx context.Context, bookingID int32) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.Payment, error)
	DeleteByBooking(ctx context.Context, bookingID int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
