package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

func TestTractorRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTractorRepository(db)
	ctx := context.Background()

	t.Run("DefaultsQuantityAndStatus", func(t *testing.T) {
		tractor := &domain.Tractor{
			OwnerID:    10,
			Name:       "Kubota L3901",
			HourlyRate: decimal.RequireFromString("500"),
		}

		mock.ExpectQuery("INSERT INTO tractors").
			WithArgs(tractor.OwnerID, tractor.Name, "", "", tractor.HourlyRate, int32(1), domain.TractorStatusIdle,
				nil, nil, "", nil, nil, "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		err := repo.Create(ctx, tractor)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), tractor.ID)
		assert.Equal(t, int32(1), tractor.Quantity)
		assert.Equal(t, domain.TractorStatusIdle, tractor.Status)
	})
}

func TestTractorRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTractorRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "model", "description", "hourly_rate", "quantity", "status",
			"lat", "lng", "location_name", "dest_lat", "dest_lng", "dest_address", "created_on", "updated_on"}).
			AddRow(2, 10, "Kubota L3901", "L3901", "", "500", 2, "IDLE",
				27.7172, 85.3240, "Depot", nil, nil, "", now, now)

		mock.ExpectQuery("SELECT (.+) FROM tractors WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		tractor, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), tractor.ID)
		assert.Equal(t, int32(2), tractor.Quantity)
		assert.True(t, tractor.HasPosition())
		assert.False(t, tractor.HasDestination())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tractors WHERE id = \\$1").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		tractor, err := repo.GetByID(ctx, 9)
		assert.Nil(t, tractor)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
