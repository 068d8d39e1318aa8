package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle axis: payment/delivery/completion progress.
type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "PENDING"
	BookingStatusPaid            BookingStatus = "PAID"
	BookingStatusRefundRequested BookingStatus = "REFUND_REQUESTED"
	BookingStatusDelivered       BookingStatus = "DELIVERED"
	BookingStatusCompleted       BookingStatus = "COMPLETED"
	BookingStatusCancelled       BookingStatus = "CANCELLED"
)

// ApprovalStatus is the independent administrative axis. A booking can be
// financially PAID while still PENDING_APPROVAL.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING_APPROVAL"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusDenied   ApprovalStatus = "DENIED"
)

// AllowedTransitions encodes the lifecycle state graph. A status missing from
// the map is terminal. DELIVERED -> DELIVERED permits the idempotent re-mark.
var AllowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:         {BookingStatusPaid, BookingStatusCancelled},
	BookingStatusPaid:            {BookingStatusRefundRequested, BookingStatusDelivered},
	BookingStatusRefundRequested: {BookingStatusCancelled, BookingStatusPaid},
	BookingStatusDelivered:       {BookingStatusDelivered, BookingStatusCompleted},
}

// CanTransition reports whether the lifecycle graph permits from -> to.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no outgoing lifecycle transition exists.
func (s BookingStatus) IsTerminal() bool {
	return len(AllowedTransitions[s]) == 0
}

// IsTerminal reports whether the approval decision has been made.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusDenied
}

type Booking struct {
	ID         int32  `json:"id"`
	Reference  string `json:"reference"`
	CustomerID int32  `json:"customer_id"`
	TractorID  int32  `json:"tractor_id"`

	Window Window `json:"window"`

	Status   BookingStatus  `json:"status"`
	Approval ApprovalStatus `json:"approval"`

	// Delivery destination, optional. Propagated onto the tractor at approval
	// time and cleared once delivery completes.
	DestLat     *float64 `json:"dest_lat,omitempty"`
	DestLng     *float64 `json:"dest_lng,omitempty"`
	DestAddress string   `json:"dest_address"`

	// Rate snapshot captured at booking creation. All price calculations use
	// this snapshot, not the tractor's live rate.
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	BookedMinutes int32           `json:"booked_minutes"`
	PlannedPrice  decimal.Decimal `json:"planned_price"`

	UsageStartedAt *time.Time `json:"usage_started_at,omitempty"`
	UsageStoppedAt *time.Time `json:"usage_stopped_at,omitempty"`

	// FinalPrice is set exactly once, when usage stops.
	FinalPrice *decimal.Decimal `json:"final_price,omitempty"`
	RefundDue  decimal.Decimal  `json:"refund_due"`
	Commission decimal.Decimal  `json:"commission"`

	PaymentReleased bool `json:"payment_released"`
	ReminderSent    bool `json:"reminder_sent"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// HasDestination reports whether a delivery destination was recorded.
func (b *Booking) HasDestination() bool {
	return b.DestLat != nil && b.DestLng != nil
}

// UsageRecorded reports whether both usage timestamps are populated.
func (b *Booking) UsageRecorded() bool {
	return b.UsageStartedAt != nil && b.UsageStoppedAt != nil
}
