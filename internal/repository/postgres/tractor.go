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

type tractorRepository struct {
	db *sql.DB
}

func NewTractorRepository(db *sql.DB) repository.TractorRepository {
	return &tractorRepository{db: db}
}

const tractorColumns = `id, owner_id, name, COALESCE(model, ''), COALESCE(description, ''), hourly_rate, quantity, status,
	lat, lng, COALESCE(location_name, ''), dest_lat, dest_lng, COALESCE(dest_address, ''), created_on, updated_on`

func (r *tractorRepository) Create(ctx context.Context, t *domain.Tractor) error {
	query := `INSERT INTO tractors (owner_id, name, model, description, hourly_rate, quantity, status,
	          lat, lng, location_name, dest_lat, dest_lng, dest_address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	if t.Quantity <= 0 {
		t.Quantity = 1
	}
	if t.Status == "" {
		t.Status = domain.TractorStatusIdle
	}
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		t.OwnerID, t.Name, t.Model, t.Description, t.HourlyRate, t.Quantity, t.Status,
		t.Lat, t.Lng, t.LocationName, t.DestLat, t.DestLng, t.DestAddress, now, now).Scan(&t.ID)
}

func (r *tractorRepository) GetByID(ctx context.Context, id int32) (*domain.Tractor, error) {
	query := `SELECT ` + tractorColumns + ` FROM tractors WHERE id = $1`
	t, err := scanTractor(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tractor %d: %w", id, domain.ErrNotFound)
	}
	return t, err
}

func (r *tractorRepository) Update(ctx context.Context, t *domain.Tractor) error {
	query := `UPDATE tractors SET name=$1, model=$2, description=$3, hourly_rate=$4, quantity=$5, status=$6,
	          lat=$7, lng=$8, location_name=$9, dest_lat=$10, dest_lng=$11, dest_address=$12, updated_on=$13 WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		t.Name, t.Model, t.Description, t.HourlyRate, t.Quantity, t.Status,
		t.Lat, t.Lng, t.LocationName, t.DestLat, t.DestLng, t.DestAddress, time.Now(), t.ID)
	return err
}

func (r *tractorRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tractors WHERE id = $1`, id)
	return err
}

func (r *tractorRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Tractor, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tractors`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + tractorColumns + ` FROM tractors ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tractors, err := collectTractors(rows)
	return tractors, count, err
}

func (r *tractorRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tractor, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tractors WHERE owner_id = $1`, ownerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + tractorColumns + ` FROM tractors WHERE owner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tractors, err := collectTractors(rows)
	return tractors, count, err
}

func scanTractor(row rowScanner) (*domain.Tractor, error) {
	t := &domain.Tractor{}
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Model, &t.Description, &t.HourlyRate, &t.Quantity, &t.Status,
		&t.Lat, &t.Lng, &t.LocationName, &t.DestLat, &t.DestLng, &t.DestAddress, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func collectTractors(rows *sql.Rows) ([]domain.Tractor, error) {
	var tractors []domain.Tractor
	for rows.Next() {
		t, err := scanTractor(rows)
		if err != nil {
			return nil, err
		}
		tractors = append(tractors, *t)
	}
	return tractors, rows.Err()
}
