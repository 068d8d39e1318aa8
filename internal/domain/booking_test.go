package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusPaid},
		{BookingStatusPending, BookingStatusCancelled},
		{BookingStatusPaid, BookingStatusRefundRequested},
		{BookingStatusPaid, BookingStatusDelivered},
		{BookingStatusRefundRequested, BookingStatusCancelled},
		{BookingStatusRefundRequested, BookingStatusPaid},
		{BookingStatusDelivered, BookingStatusDelivered},
		{BookingStatusDelivered, BookingStatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusDelivered},
		{BookingStatusPending, BookingStatusCompleted},
		{BookingStatusPaid, BookingStatusCancelled},
		{BookingStatusPaid, BookingStatusCompleted},
		{BookingStatusDelivered, BookingStatusCancelled},
		{BookingStatusCompleted, BookingStatusDelivered},
		{BookingStatusCancelled, BookingStatusPending},
		{BookingStatusCancelled, BookingStatusPaid},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())

	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusPaid.IsTerminal())
	assert.False(t, BookingStatusRefundRequested.IsTerminal())
	assert.False(t, BookingStatusDelivered.IsTerminal())
}

func TestApprovalStatus_IsTerminal(t *testing.T) {
	assert.False(t, ApprovalStatusPending.IsTerminal())
	assert.True(t, ApprovalStatusApproved.IsTerminal())
	assert.True(t, ApprovalStatusDenied.IsTerminal())
}

func TestBooking_UsageRecorded(t *testing.T) {
	w := mustWindow("2026-03-01T10:00:00Z", "2026-03-01T12:00:00Z")
	b := &Booking{Window: w}
	assert.False(t, b.UsageRecorded())

	b.UsageStartedAt = &w.StartAt
	assert.False(t, b.UsageRecorded())

	b.UsageStoppedAt = &w.EndAt
	assert.True(t, b.UsageRecorded())
}

func TestBooking_HasDestination(t *testing.T) {
	b := &Booking{}
	assert.False(t, b.HasDestination())

	lat, lng := 27.7172, 85.3240
	b.DestLat = &lat
	assert.False(t, b.HasDestination())

	b.DestLng = &lng
	assert.True(t, b.HasDestination())
}
