package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockTractorRepo
type MockTractorRepo struct {
	mock.Mock
}

func (m *MockTractorRepo) Create(ctx context.Context, tractor *domain.Tractor) error {
	args := m.Called(ctx, tractor)
	return args.Error(0)
}
func (m *MockTractorRepo) GetByID(ctx context.Context, id int32) (*domain.Tractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tractor), args.Error(1)
}
func (m *MockTractorRepo) Update(ctx context.Context, tractor *domain.Tractor) error {
	args := m.Called(ctx, tractor)
	return args.Error(0)
}
func (m *MockTractorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTractorRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Tractor, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Tractor), args.Get(1).(int32), args.Error(2)
}
func (m *MockTractorRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tractor, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Tractor), args.Get(1).(int32), args.Error(2)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByTractor(ctx context.Context, tractorID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, tractorID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) CountApprovedOverlapping(ctx context.Context, tractorID int32, window domain.Window, excludeBookingID int32) (int32, error) {
	args := m.Called(ctx, tractorID, window, excludeBookingID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) LatestByTractor(ctx context.Context, tractorID int32) (*domain.Booking, error) {
	args := m.Called(ctx, tractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListDueForReminder(ctx context.Context, endsBefore time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, endsBefore)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) MarkReminderSent(ctx context.Context, bookingID int32) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) DeleteByBooking(ctx context.Context, bookingID int32) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequested(ctx context.Context, adminEmail, customerName, tractorName string) error {
	args := m.Called(ctx, adminEmail, customerName, tractorName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingApproved(ctx context.Context, customerEmail, customerName, tractorName string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDenied(ctx context.Context, customerEmail, customerName, tractorName string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceived(ctx context.Context, customerEmail, customerName, tractorName, amount string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendRefundRequested(ctx context.Context, adminEmail, customerName, tractorName string) error {
	args := m.Called(ctx, adminEmail, customerName, tractorName)
	return args.Error(0)
}
func (m *MockEmailService) SendRefundDecision(ctx context.Context, customerEmail, customerName, tractorName string, approved bool, refund, fee string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName, approved, refund, fee)
	return args.Error(0)
}
func (m *MockEmailService) SendDelivered(ctx context.Context, customerEmail, customerName, tractorName string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName)
	return args.Error(0)
}
func (m *MockEmailService) SendCompleted(ctx context.Context, customerEmail, customerName, tractorName, finalPrice, refundDue string) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName, finalPrice, refundDue)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, customerEmail, customerName, tractorName string, endAt time.Time) error {
	args := m.Called(ctx, customerEmail, customerName, tractorName, endAt)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordResetCode(ctx context.Context, email, name, code string) error {
	args := m.Called(ctx, email, name, code)
	return args.Error(0)
}
