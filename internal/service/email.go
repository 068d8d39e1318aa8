package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingRequested(ctx context.Context, adminEmail, customerName, tractorName string) error {
	subject := fmt.Sprintf("New Booking Request: %s", tractorName)
	body := fmt.Sprintf("%s has requested to book %s.\n\nPlease review the request in the admin panel.", customerName, tractorName)
	return s.send(adminEmail, "", subject, body)
}

func (s *emailService) SendBookingApproved(ctx context.Context, customerEmail, customerName, tractorName string) error {
	subject := fmt.Sprintf("Booking Approved: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s has been approved.", customerName, tractorName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendBookingDenied(ctx context.Context, customerEmail, customerName, tractorName string) error {
	subject := fmt.Sprintf("Booking Denied: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your booking for %s was denied.", customerName, tractorName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendPaymentReceived(ctx context.Context, customerEmail, customerName, tractorName, amount string) error {
	subject := fmt.Sprintf("Payment Received: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %s for %s.", customerName, amount, tractorName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendRefundRequested(ctx context.Context, adminEmail, customerName, tractorName string) error {
	subject := fmt.Sprintf("Refund Requested: %s", tractorName)
	body := fmt.Sprintf("%s has requested to cancel a paid booking for %s. The refund awaits review.", customerName, tractorName)
	return s.send(adminEmail, "", subject, body)
}

func (s *emailService) SendRefundDecision(ctx context.Context, customerEmail, customerName, tractorName string, approved bool, refund, fee string) error {
	if approved {
		subject := fmt.Sprintf("Refund Approved: %s", tractorName)
		body := fmt.Sprintf("Hello %s,\n\nYour cancellation of %s was approved.\nRefund: %s\nCancellation fee: %s", customerName, tractorName, refund, fee)
		return s.send(customerEmail, customerName, subject, body)
	}
	subject := fmt.Sprintf("Refund Rejected: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nYour refund request for %s was rejected. The booking remains paid.", customerName, tractorName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendDelivered(ctx context.Context, customerEmail, customerName, tractorName string) error {
	subject := fmt.Sprintf("Delivered: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\n%s has been delivered and is ready for use.", customerName, tractorName)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendCompleted(ctx context.Context, customerEmail, customerName, tractorName, finalPrice, refundDue string) error {
	subject := fmt.Sprintf("Booking Completed: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s is complete.\nFinal price: %s\nRefund due: %s", customerName, tractorName, finalPrice, refundDue)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, customerEmail, customerName, tractorName string, endAt time.Time) error {
	subject := fmt.Sprintf("Return Reminder: %s", tractorName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s ends at %s. Please prepare to return it.", customerName, tractorName, endAt.Format(time.RFC1123))
	return s.send(customerEmail, customerName, subject, body)
}

func (s *emailService) SendPasswordResetCode(ctx context.Context, email, name, code string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Hello %s,\n\nYour password reset code is: %s\n\nThe code expires shortly. If you did not request it, ignore this email.", name, code)
	return s.send(email, name, subject, body)
}
