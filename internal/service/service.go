package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

// BookingRequest is the input to RequestBooking.
type BookingRequest struct {
	CustomerID  int32
	TractorID   int32
	Window      domain.Window
	DestLat     *float64
	DestLng     *float64
	DestAddress string
}

// CancellationOutcome reports the refund/fee split of an approved cancellation
// so clients can render both amounts.
type CancellationOutcome struct {
	Booking      *domain.Booking
	RefundAmount decimal.Decimal
	FeeAmount    decimal.Decimal
}

// BookingService drives the booking lifecycle. Every operation returns either
// the mutated booking or a typed failure from the domain package; none retries
// internally, and notification failures never surface as errors.
type BookingService interface {
	RequestBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error)
	DenyBooking(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error)
	MarkPaid(ctx context.Context, actorID, bookingID int32, method string) (*domain.Booking, error)
	RequestCancellation(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error)
	ApproveRefund(ctx context.Context, adminID, bookingID int32) (*CancellationOutcome, error)
	RejectRefund(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error)
	MarkDelivered(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error)
	StartUsage(ctx context.Context, actorID, bookingID int32, at time.Time) (*domain.Booking, error)
	StopUsage(ctx context.Context, actorID, bookingID int32, at time.Time) (*domain.Booking, error)
	MarkCompleted(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error)
	GetBooking(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	DeleteBooking(ctx context.Context, adminID, bookingID int32) error
}

// TrackingPayload is the read-only dispatch view for a booking.
type TrackingPayload struct {
	BookingID      int32                `json:"booking_id"`
	Reference      string               `json:"reference"`
	Status         domain.BookingStatus `json:"status"`
	TractorID      int32                `json:"tractor_id"`
	TractorStatus  domain.TractorStatus `json:"tractor_status"`
	CurrentLat     *float64             `json:"current_lat,omitempty"`
	CurrentLng     *float64             `json:"current_lng,omitempty"`
	LocationName   string               `json:"location_name"`
	DestLat        *float64             `json:"dest_lat,omitempty"`
	DestLng        *float64             `json:"dest_lng,omitempty"`
	DestAddress    string               `json:"dest_address"`
	DistanceKm     *float64             `json:"distance_km,omitempty"`
	ETAMinutes     *int                 `json:"eta_minutes,omitempty"`
	AverageSpeedKmh float64             `json:"average_speed_kmh"`
}

// TrackingService exposes dispatch estimates derived from booking and tractor
// records. All reads; nothing is mutated.
type TrackingService interface {
	GetTrackingPayload(ctx context.Context, actorID, bookingID int32) (*TrackingPayload, error)
	GetLatestDispatch(ctx context.Context, tractorID int32) (*TrackingPayload, error)
}

type TractorService interface {
	AddTractor(ctx context.Context, tractor *domain.Tractor) error
	GetTractor(ctx context.Context, id int32) (*domain.Tractor, error)
	UpdateTractor(ctx context.Context, tractor *domain.Tractor) error
	DeleteTractor(ctx context.Context, id int32) error
	ListTractors(ctx context.Context, page, pageSize int32) ([]domain.Tractor, int32, error)
	ListMyTractors(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tractor, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// EmailService dispatches booking emails. Callers treat every send as
// fire-and-forget: a failure is logged and swallowed, never propagated.
type EmailService interface {
	SendBookingRequested(ctx context.Context, adminEmail, customerName, tractorName string) error
	SendBookingApproved(ctx context.Context, customerEmail, customerName, tractorName string) error
	SendBookingDenied(ctx context.Context, customerEmail, customerName, tractorName string) error
	SendPaymentReceived(ctx context.Context, customerEmail, customerName, tractorName, amount string) error
	SendRefundRequested(ctx context.Context, adminEmail, customerName, tractorName string) error
	SendRefundDecision(ctx context.Context, customerEmail, customerName, tractorName string, approved bool, refund, fee string) error
	SendDelivered(ctx context.Context, customerEmail, customerName, tractorName string) error
	SendCompleted(ctx context.Context, customerEmail, customerName, tractorName, finalPrice, refundDue string) error
	SendReturnReminder(ctx context.Context, customerEmail, customerName, tractorName string, endAt time.Time) error
	SendPasswordResetCode(ctx context.Context, email, name, code string) error
}
