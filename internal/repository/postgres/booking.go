package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, customer_id, tractor_id, start_at, end_at, status, approval,
	dest_lat, dest_lng, COALESCE(dest_address, ''), hourly_rate, booked_minutes, planned_price,
	usage_started_at, usage_stopped_at, final_price, refund_due, commission,
	payment_released, reminder_sent, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, customer_id, tractor_id, start_at, end_at, status, approval,
	          dest_lat, dest_lng, dest_address, hourly_rate, booked_minutes, planned_price,
	          refund_due, commission, payment_released, reminder_sent, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		b.Reference, b.CustomerID, b.TractorID, b.Window.StartAt, b.Window.EndAt, b.Status, b.Approval,
		b.DestLat, b.DestLng, b.DestAddress, b.HourlyRate, b.BookedMinutes, b.PlannedPrice,
		b.RefundDue, b.Commission, b.PaymentReleased, b.ReminderSent, now, now,
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	return b, err
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, approval=$2, dest_lat=$3, dest_lng=$4, dest_address=$5,
	          usage_started_at=$6, usage_stopped_at=$7, final_price=$8, refund_due=$9, commission=$10,
	          payment_released=$11, reminder_sent=$12, updated_on=$13 WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		b.Status, b.Approval, b.DestLat, b.DestLng, b.DestAddress,
		b.UsageStartedAt, b.UsageStoppedAt, b.FinalPrice, b.RefundDue, b.Commission,
		b.PaymentReleased, b.ReminderSent, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "customer_id", customerID, status, page, pageSize)
}

func (r *bookingRepository) ListByTractor(ctx context.Context, tractorID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "tractor_id", tractorID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + column + ` = $1`

	args := []interface{}{id}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

// CountApprovedOverlapping uses the half-open overlap rule: two windows
// [a1,a2) and [b1,b2) overlap iff a1 < b2 AND b1 < a2.
func (r *bookingRepository) CountApprovedOverlapping(ctx context.Context, tractorID int32, window domain.Window, excludeBookingID int32) (int32, error) {
	query := `SELECT count(*) FROM bookings
	          WHERE tractor_id = $1 AND approval = $2 AND id <> $3
	            AND start_at < $4 AND $5 < end_at`
	var count int32
	err := r.db.QueryRowContext(ctx, query,
		tractorID, domain.ApprovalStatusApproved, excludeBookingID,
		window.EndAt, window.StartAt).Scan(&count)
	return count, err
}

func (r *bookingRepository) LatestByTractor(ctx context.Context, tractorID int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tractor_id = $1 ORDER BY created_on DESC LIMIT 1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, tractorID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no bookings for tractor %d: %w", tractorID, domain.ErrNotFound)
	}
	return b, err
}

func (r *bookingRepository) ListDueForReminder(ctx context.Context, endsBefore time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE reminder_sent = FALSE AND end_at <= $1 AND status IN ($2, $3)`
	rows, err := r.db.QueryContext(ctx, query, endsBefore,
		domain.BookingStatusPaid, domain.BookingStatusDelivered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// MarkReminderSent is a conditional update so a concurrent or retried sweep
// flips the flag at most once.
func (r *bookingRepository) MarkReminderSent(ctx context.Context, bookingID int32) (bool, error) {
	query := `UPDATE bookings SET reminder_sent = TRUE, updated_on = $1
	          WHERE id = $2 AND reminder_sent = FALSE`
	result, err := r.db.ExecContext(ctx, query, time.Now(), bookingID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.TractorID,
		&b.Window.StartAt, &b.Window.EndAt, &b.Status, &b.Approval,
		&b.DestLat, &b.DestLng, &b.DestAddress, &b.HourlyRate, &b.BookedMinutes, &b.PlannedPrice,
		&b.UsageStartedAt, &b.UsageStoppedAt, &b.FinalPrice, &b.RefundDue, &b.Commission,
		&b.PaymentReleased, &b.ReminderSent, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}
