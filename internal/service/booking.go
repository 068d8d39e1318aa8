package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/availability"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/billing"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/logger"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	tractorRepo repository.TractorRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	resolver    *availability.Resolver
	calc        *billing.Calculator
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	tractorRepo repository.TractorRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	resolver *availability.Resolver,
	calc *billing.Calculator,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		tractorRepo: tractorRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		resolver:    resolver,
		calc:        calc,
	}
}

// RequestBooking admits a request into the queue in PENDING state. Inventory
// is not gated here: pending requests may queue even when the pool is
// momentarily exhausted, so admins can arbitrate between competing requests at
// approval time.
func (s *bookingService) RequestBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}

	tractor, err := s.tractorRepo.GetByID(ctx, req.TractorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:     uuid.NewString(),
		CustomerID:    req.CustomerID,
		TractorID:     req.TractorID,
		Window:        req.Window,
		Status:        domain.BookingStatusPending,
		Approval:      domain.ApprovalStatusPending,
		DestLat:       req.DestLat,
		DestLng:       req.DestLng,
		DestAddress:   req.DestAddress,
		HourlyRate:    tractor.HourlyRate,
		BookedMinutes: req.Window.Minutes(),
		PlannedPrice:  s.calc.PlannedPrice(tractor.HourlyRate, req.Window),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if owner, err := s.userRepo.GetByID(ctx, tractor.OwnerID); err == nil {
		customer, _ := s.userRepo.GetByID(ctx, req.CustomerID)
		if customer != nil {
			s.sendEmail("booking requested", func() error {
				return s.emailSvc.SendBookingRequested(ctx, owner.Email, customer.Name, tractor.Name)
			})
			s.notify(ctx, owner.ID, "New Booking Request",
				fmt.Sprintf("%s requested %s", customer.Name, tractor.Name),
				map[string]string{"type": "BOOKING_REQUESTED", "booking_id": fmt.Sprintf("%d", booking.ID)})
		}
	}

	return booking, nil
}

// ApproveBooking grants the booking a unit of inventory. The capacity check
// and the APPROVED write run under the tractor's approval lock so two
// concurrent approvals cannot both take the last unit.
func (s *bookingService) ApproveBooking(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error) {
	if _, err := s.requireAdmin(ctx, adminID, "approve bookings"); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, &domain.AlreadyFinalizedError{BookingID: booking.ID, Status: booking.Status}
	}
	if booking.Approval.IsTerminal() {
		return nil, &domain.AlreadyFinalizedError{BookingID: booking.ID, Field: "approval"}
	}

	tractor, err := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if err != nil {
		return nil, err
	}

	unlock := s.resolver.LockTractor(booking.TractorID)
	defer unlock()

	if err := s.resolver.CheckCapacity(ctx, booking.TractorID, booking.Window, tractor.Quantity, booking.ID); err != nil {
		return nil, err
	}

	booking.Approval = domain.ApprovalStatusApproved
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.propagateDestination(ctx, booking, tractor); err != nil {
		logger.Error("Failed to propagate booking destination to tractor",
			"booking_id", booking.ID, "tractor_id", tractor.ID, "error", err)
	}

	s.notifyCustomer(ctx, booking, "Booking Approved",
		fmt.Sprintf("Your booking for %s was approved", tractor.Name), "BOOKING_APPROVED",
		func(email, name string) error {
			return s.emailSvc.SendBookingApproved(ctx, email, name, tractor.Name)
		})

	return booking, nil
}

func (s *bookingService) DenyBooking(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error) {
	if _, err := s.requireAdmin(ctx, adminID, "deny bookings"); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Approval.IsTerminal() {
		return nil, &domain.AlreadyFinalizedError{BookingID: booking.ID, Field: "approval"}
	}

	booking.Approval = domain.ApprovalStatusDenied
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	tractor, _ := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if tractor != nil {
		s.notifyCustomer(ctx, booking, "Booking Denied",
			fmt.Sprintf("Your booking for %s was denied", tractor.Name), "BOOKING_DENIED",
			func(email, name string) error {
				return s.emailSvc.SendBookingDenied(ctx, email, name, tractor.Name)
			})
	}

	return booking, nil
}

// MarkPaid records the payment and moves PENDING to PAID. If the booking is
// still awaiting approval it is auto-approved as an administrative shortcut,
// but only after passing the same capacity check as ApproveBooking; on a full
// pool the booking stays PENDING_APPROVAL for an admin to arbitrate.
func (s *bookingService) MarkPaid(ctx context.Context, actorID, bookingID int32, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingActor(ctx, actorID, booking, "record payment"); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusPaid,
			Required:  []domain.BookingStatus{domain.BookingStatusPending},
		}
	}

	payment := &domain.Payment{
		BookingID: booking.ID,
		Amount:    booking.PlannedPrice,
		Method:    method,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusPaid
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if booking.Approval == domain.ApprovalStatusPending {
		s.autoApproveOnPay(ctx, booking)
	}

	tractor, _ := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if tractor != nil {
		s.notifyCustomer(ctx, booking, "Payment Received",
			fmt.Sprintf("Payment of %s received for %s", booking.PlannedPrice.String(), tractor.Name), "PAYMENT_RECEIVED",
			func(email, name string) error {
				return s.emailSvc.SendPaymentReceived(ctx, email, name, tractor.Name, booking.PlannedPrice.String())
			})
	}

	return booking, nil
}

// autoApproveOnPay applies the pay-time approval shortcut under the tractor
// lock. A capacity failure is not an error for the payment itself.
func (s *bookingService) autoApproveOnPay(ctx context.Context, booking *domain.Booking) {
	tractor, err := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if err != nil {
		logger.Error("Auto-approve skipped: tractor lookup failed", "booking_id", booking.ID, "error", err)
		return
	}

	unlock := s.resolver.LockTractor(booking.TractorID)
	defer unlock()

	if err := s.resolver.CheckCapacity(ctx, booking.TractorID, booking.Window, tractor.Quantity, booking.ID); err != nil {
		logger.Warn("Auto-approve skipped: capacity exhausted, awaiting admin arbitration",
			"booking_id", booking.ID, "tractor_id", booking.TractorID, "error", err)
		return
	}

	booking.Approval = domain.ApprovalStatusApproved
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		logger.Error("Auto-approve failed to persist", "booking_id", booking.ID, "error", err)
		booking.Approval = domain.ApprovalStatusPending
		return
	}

	if err := s.propagateDestination(ctx, booking, tractor); err != nil {
		logger.Error("Failed to propagate booking destination to tractor",
			"booking_id", booking.ID, "tractor_id", tractor.ID, "error", err)
	}
}

// RequestCancellation cancels a PENDING booking outright. A PAID booking
// becomes a refund request instead: collected funds are only released after
// administrative review.
func (s *bookingService) RequestCancellation(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingActor(ctx, actorID, booking, "cancel booking"); err != nil {
		return nil, err
	}

	switch booking.Status {
	case domain.BookingStatusPending:
		booking.Status = domain.BookingStatusCancelled
	case domain.BookingStatusPaid:
		booking.Status = domain.BookingStatusRefundRequested
	default:
		if booking.Status.IsTerminal() {
			return nil, &domain.AlreadyFinalizedError{BookingID: booking.ID, Status: booking.Status}
		}
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusCancelled,
			Required:  []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusPaid},
		}
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	tractor, _ := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if tractor != nil && booking.Status == domain.BookingStatusRefundRequested {
		if owner, err := s.userRepo.GetByID(ctx, tractor.OwnerID); err == nil {
			customer, _ := s.userRepo.GetByID(ctx, booking.CustomerID)
			if customer != nil {
				s.sendEmail("refund requested", func() error {
					return s.emailSvc.SendRefundRequested(ctx, owner.Email, customer.Name, tractor.Name)
				})
			}
			s.notify(ctx, owner.ID, "Refund Requested",
				fmt.Sprintf("Cancellation requested for a paid booking of %s", tractor.Name),
				map[string]string{"type": "REFUND_REQUESTED", "booking_id": fmt.Sprintf("%d", booking.ID)})
		}
	}

	return booking, nil
}

// ApproveRefund finalizes a customer cancellation of a paid booking. The
// refund keeps 97% of the collected total; the remaining 3% is the platform's
// cancellation fee. Both amounts are reported so clients can show the split.
func (s *bookingService) ApproveRefund(ctx context.Context, adminID, bookingID int32) (*CancellationOutcome, error) {
	if _, err := s.requireAdmin(ctx, adminID, "approve refunds"); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusRefundRequested {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusCancelled,
			Required:  []domain.BookingStatus{domain.BookingStatusRefundRequested},
		}
	}

	refund, fee := s.calc.CancellationSplit(booking.PlannedPrice)

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	tractor, _ := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if tractor != nil {
		s.notifyCustomer(ctx, booking, "Refund Approved",
			fmt.Sprintf("Refund of %s approved for %s (fee %s)", refund.String(), tractor.Name, fee.String()), "REFUND_APPROVED",
			func(email, name string) error {
				return s.emailSvc.SendRefundDecision(ctx, email, name, tractor.Name, true, refund.String(), fee.String())
			})
	}

	return &CancellationOutcome{Booking: booking, RefundAmount: refund, FeeAmount: fee}, nil
}

func (s *bookingService) RejectRefund(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error) {
	if _, err := s.requireAdmin(ctx, adminID, "reject refunds"); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusRefundRequested {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusPaid,
			Required:  []domain.BookingStatus{domain.BookingStatusRefundRequested},
		}
	}

	booking.Status = domain.BookingStatusPaid
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	tractor, _ := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if tractor != nil {
		s.notifyCustomer(ctx, booking, "Refund Rejected",
			fmt.Sprintf("Refund rejected for %s; the booking remains paid", tractor.Name), "REFUND_REJECTED",
			func(email, name string) error {
				return s.emailSvc.SendRefundDecision(ctx, email, name, tractor.Name, false, "0", "0")
			})
	}

	return booking, nil
}

// MarkDelivered puts the tractor in the customer's hands: the tractor goes
// IN_USE and, if a destination was recorded, its position moves to that
// destination and the in-flight destination is cleared. Re-marking an already
// delivered booking is a no-op so retries are safe.
func (s *bookingService) MarkDelivered(ctx context.Context, adminID, bookingID int32) (*domain.Booking, error) {
	if _, err := s.requireAdmin(ctx, adminID, "mark deliveries"); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusDelivered {
		return booking, nil
	}
	if !domain.CanTransition(booking.Status, domain.BookingStatusDelivered) {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusDelivered,
			Required:  []domain.BookingStatus{domain.BookingStatusPaid, domain.BookingStatusDelivered},
		}
	}
	if booking.Approval != domain.ApprovalStatusApproved {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusDelivered,
			Reason:    "admin approval required before delivery",
		}
	}

	tractor, err := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if err != nil {
		return nil, err
	}

	tractor.Status = domain.TractorStatusInUse
	if tractor.HasDestination() {
		// Delivery is now "home": the destination becomes the current position.
		tractor.Lat = tractor.DestLat
		tractor.Lng = tractor.DestLng
		tractor.LocationName = tractor.DestAddress
		tractor.DestLat = nil
		tractor.DestLng = nil
		tractor.DestAddress = ""
	}
	if err := s.tractorRepo.Update(ctx, tractor); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusDelivered
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, booking, "Tractor Delivered",
		fmt.Sprintf("%s has been delivered", tractor.Name), "BOOKING_DELIVERED",
		func(email, name string) error {
			return s.emailSvc.SendDelivered(ctx, email, name, tractor.Name)
		})

	return booking, nil
}

// StartUsage records the moment the customer actually begins using the
// tractor. Calling it again with usage already started is a no-op.
func (s *bookingService) StartUsage(ctx context.Context, actorID, bookingID int32, at time.Time) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingActor(ctx, actorID, booking, "start usage"); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusDelivered {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusDelivered,
			Required:  []domain.BookingStatus{domain.BookingStatusDelivered},
			Reason:    "usage can only start after delivery",
		}
	}
	if booking.UsageStartedAt != nil {
		return booking, nil
	}

	booking.UsageStartedAt = &at
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// StopUsage finalizes usage-based billing. The final price is set exactly
// once; the minimum-charge floor guarantees at least 30 billable minutes, and
// any overpayment against the planned price becomes the refund due.
func (s *bookingService) StopUsage(ctx context.Context, actorID, bookingID int32, at time.Time) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingActor(ctx, actorID, booking, "stop usage"); err != nil {
		return nil, err
	}
	if booking.UsageStartedAt == nil {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        booking.Status,
			Reason:    "usage has not started",
		}
	}
	if booking.FinalPrice != nil {
		return nil, &domain.AlreadyFinalizedError{BookingID: booking.ID, Field: "final price"}
	}

	final := s.calc.FinalPrice(booking.HourlyRate, *booking.UsageStartedAt, at)
	booking.UsageStoppedAt = &at
	booking.FinalPrice = &final
	booking.RefundDue = s.calc.RefundDue(booking.PlannedPrice, final)

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// MarkCompleted closes out the booking after the owner confirms the return.
// The platform commission is computed here, exactly once.
func (s *bookingService) MarkCompleted(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	tractor, err := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && tractor.OwnerID != actorID {
		return nil, &domain.UnauthorizedError{ActorID: actorID, Action: "complete booking"}
	}

	if booking.Status != domain.BookingStatusDelivered {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusCompleted,
			Required:  []domain.BookingStatus{domain.BookingStatusDelivered},
		}
	}
	if !booking.UsageRecorded() || booking.FinalPrice == nil {
		return nil, &domain.InvalidTransitionError{
			BookingID: booking.ID,
			From:      booking.Status,
			To:        domain.BookingStatusCompleted,
			Reason:    "usage must be stopped before completion",
		}
	}

	booking.Commission = s.calc.Commission(*booking.FinalPrice)
	booking.PaymentReleased = true
	booking.Status = domain.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	tractor.Status = domain.TractorStatusIdle
	if err := s.tractorRepo.Update(ctx, tractor); err != nil {
		logger.Error("Failed to mark tractor idle after completion",
			"tractor_id", tractor.ID, "booking_id", booking.ID, "error", err)
	}

	s.notifyCustomer(ctx, booking, "Booking Completed",
		fmt.Sprintf("Your booking for %s is complete", tractor.Name), "BOOKING_COMPLETED",
		func(email, name string) error {
			return s.emailSvc.SendCompleted(ctx, email, name, tractor.Name,
				booking.FinalPrice.String(), booking.RefundDue.String())
		})

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actorID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBookingActor(ctx, actorID, booking, "view booking"); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID, status, page, pageSize)
}

// DeleteBooking hard-deletes a booking. Dependent payment records are removed
// first so no orphaned payment can survive the booking.
func (s *bookingService) DeleteBooking(ctx context.Context, adminID, bookingID int32) error {
	if _, err := s.requireAdmin(ctx, adminID, "delete bookings"); err != nil {
		return err
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteByBooking(ctx, booking.ID); err != nil {
		return err
	}
	return s.bookingRepo.Delete(ctx, booking.ID)
}

func (s *bookingService) requireAdmin(ctx context.Context, actorID int32, action string) (*domain.User, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, &domain.UnauthorizedError{ActorID: actorID, Action: action}
	}
	return actor, nil
}

// authorizeBookingActor allows the booking's customer or an administrator.
func (s *bookingService) authorizeBookingActor(ctx context.Context, actorID int32, booking *domain.Booking, action string) error {
	if booking.CustomerID == actorID {
		return nil
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return &domain.UnauthorizedError{ActorID: actorID, Action: action}
	}
	return nil
}

func (s *bookingService) propagateDestination(ctx context.Context, booking *domain.Booking, tractor *domain.Tractor) error {
	if !booking.HasDestination() {
		return nil
	}
	tractor.DestLat = booking.DestLat
	tractor.DestLng = booking.DestLng
	tractor.DestAddress = booking.DestAddress
	return s.tractorRepo.Update(ctx, tractor)
}

// notifyCustomer sends the email and notification record for a transition.
// Failures are logged and swallowed: a notification problem must never fail a
// state transition.
func (s *bookingService) notifyCustomer(ctx context.Context, booking *domain.Booking, title, message, noteType string, send func(email, name string) error) {
	customer, err := s.userRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		logger.Warn("Notification skipped: customer lookup failed", "booking_id", booking.ID, "error", err)
		return
	}

	s.sendEmail(noteType, func() error { return send(customer.Email, customer.Name) })
	s.notify(ctx, customer.ID, title, message,
		map[string]string{"type": noteType, "booking_id": fmt.Sprintf("%d", booking.ID)})
}

func (s *bookingService) notify(ctx context.Context, userID int32, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification record", "user_id", userID, "title", title, "error", err)
	}
}

func (s *bookingService) sendEmail(kind string, send func() error) {
	if err := send(); err != nil {
		logger.Warn("Failed to send email", "kind", kind, "error", err)
	}
}
