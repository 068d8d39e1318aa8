package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *mockBookingRepo) ListByTractor(ctx context.Context, tractorID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, tractorID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *mockBookingRepo) CountApprovedOverlapping(ctx context.Context, tractorID int32, window domain.Window, excludeBookingID int32) (int32, error) {
	args := m.Called(ctx, tractorID, window, excludeBookingID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *mockBookingRepo) LatestByTractor(ctx context.Context, tractorID int32) (*domain.Booking, error) {
	args := m.Called(ctx, tractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingRepo) ListDueForReminder(ctx context.Context, endsBefore time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, endsBefore)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *mockBookingRepo) MarkReminderSent(ctx context.Context, bookingID int32) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func testWindow() domain.Window {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.Window{StartAt: start, EndAt: start.Add(2 * time.Hour)}
}

func TestResolver_CanAccept(t *testing.T) {
	ctx := context.Background()
	window := testWindow()

	t.Run("FreeUnitRemaining", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("CountApprovedOverlapping", ctx, int32(1), window, int32(0)).Return(int32(1), nil)

		r := NewResolver(repo)
		ok, err := r.CanAccept(ctx, 1, window, 2, 0)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("PoolSaturated", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("CountApprovedOverlapping", ctx, int32(1), window, int32(0)).Return(int32(2), nil)

		r := NewResolver(repo)
		ok, err := r.CanAccept(ctx, 1, window, 2, 0)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestResolver_CheckCapacity(t *testing.T) {
	ctx := context.Background()
	window := testWindow()

	t.Run("WithinCapacity", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("CountApprovedOverlapping", ctx, int32(7), window, int32(42)).Return(int32(0), nil)

		r := NewResolver(repo)
		assert.NoError(t, r.CheckCapacity(ctx, 7, window, 1, 42))
	})

	t.Run("Exceeded", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("CountApprovedOverlapping", ctx, int32(7), window, int32(0)).Return(int32(3), nil)

		r := NewResolver(repo)
		err := r.CheckCapacity(ctx, 7, window, 3, 0)
		assert.Error(t, err)

		var capErr *domain.CapacityExceededError
		assert.ErrorAs(t, err, &capErr)
		assert.Equal(t, int32(7), capErr.TractorID)
		assert.Equal(t, int32(3), capErr.Quantity)
		assert.Equal(t, int32(3), capErr.Overlapping)
	})

	t.Run("RepositoryErrorPropagates", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("CountApprovedOverlapping", ctx, int32(7), window, int32(0)).
			Return(int32(0), assert.AnError)

		r := NewResolver(repo)
		assert.ErrorIs(t, r.CheckCapacity(ctx, 7, window, 1, 0), assert.AnError)
	})
}

func TestResolver_LockTractor(t *testing.T) {
	r := NewResolver(new(mockBookingRepo))

	t.Run("SerializesSameTractor", func(t *testing.T) {
		const workers = 20
		var inCritical, maxInCritical int

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := r.LockTractor(5)
				defer unlock()

				inCritical++
				if inCritical > maxInCritical {
					maxInCritical = inCritical
				}
				time.Sleep(time.Millisecond)
				inCritical--
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxInCritical)
	})

	t.Run("DifferentTractorsDoNotBlock", func(t *testing.T) {
		unlock5 := r.LockTractor(5)
		defer unlock5()

		done := make(chan struct{})
		go func() {
			unlock6 := r.LockTractor(6)
			unlock6()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on a different tractor blocked")
		}
	})
}
