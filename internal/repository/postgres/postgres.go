package postgres

import (
	"database/sql"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.TractorRepository
	repository.BookingRepository
	repository.PaymentRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		TractorRepository:      NewTractorRepository(db),
		BookingRepository:      NewBookingRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
