// Package availability decides whether a booking can be granted against a
// tractor's finite inventory.
package availability

import (
	"context"
	"sync"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

// Resolver answers capacity questions for a tractor's shared unit pool.
//
// Requests are admitted while PENDING even when inventory is momentarily
// exhausted; the hard capacity check happens at approval time so admins can
// arbitrate between competing queued requests. The approval-time check and the
// APPROVED write must happen under LockTractor for the same tractor.
type Resolver struct {
	bookings repository.BookingRepository

	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func NewResolver(bookings repository.BookingRepository) *Resolver {
	return &Resolver{
		bookings: bookings,
		locks:    make(map[int32]*sync.Mutex),
	}
}

// OverlappingApprovedCount counts approved bookings on the tractor whose
// windows overlap the candidate's, excluding the candidate itself.
func (r *Resolver) OverlappingApprovedCount(ctx context.Context, tractorID int32, window domain.Window, excludeBookingID int32) (int32, error) {
	return r.bookings.CountApprovedOverlapping(ctx, tractorID, window, excludeBookingID)
}

// CanAccept reports whether the tractor still has a free unit for the window:
// the count of overlapping approved bookings must stay strictly below the
// inventory quantity.
func (r *Resolver) CanAccept(ctx context.Context, tractorID int32, window domain.Window, quantity, excludeBookingID int32) (bool, error) {
	count, err := r.OverlappingApprovedCount(ctx, tractorID, window, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count < quantity, nil
}

// CheckCapacity is CanAccept expressed as an error: it returns a
// CapacityExceededError carrying the quantity and overlap count for operator
// feedback when the pool is full.
func (r *Resolver) CheckCapacity(ctx context.Context, tractorID int32, window domain.Window, quantity, excludeBookingID int32) error {
	count, err := r.OverlappingApprovedCount(ctx, tractorID, window, excludeBookingID)
	if err != nil {
		return err
	}
	if count >= quantity {
		return &domain.CapacityExceededError{
			TractorID:   tractorID,
			Quantity:    quantity,
			Overlapping: count,
		}
	}
	return nil
}

// LockTractor serializes approval decisions per tractor so two concurrent
// approvals cannot both observe a free unit and both succeed. The returned
// function releases the lock.
func (r *Resolver) LockTractor(tractorID int32) func() {
	r.mu.Lock()
	lock, ok := r.locks[tractorID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[tractorID] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
