package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (booking_id, amount, method, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.BookingID, p.Amount, p.Method, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Payment, error) {
	query := `SELECT id, booking_id, amount, COALESCE(method, ''), created_on FROM payments WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// DeleteByBooking removes dependent payment records ahead of a booking delete.
func (r *paymentRepository) DeleteByBooking(ctx context.Context, bookingID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE booking_id = $1`, bookingID)
	return err
}
