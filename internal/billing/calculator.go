// Package billing computes planned, usage-based and cancellation amounts for
// bookings. All functions are pure; every amount is a decimal, never a binary
// float, so repeated persistence round-trips cannot drift.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

// MinimumChargeMinutes is the floor applied to actual usage: a customer who
// stops usage earlier is still billed for 30 minutes.
const MinimumChargeMinutes int32 = 30

// moneyPlaces is the smallest currency unit (two decimal places).
const moneyPlaces int32 = 2

var (
	defaultCancellationFeeRate = decimal.RequireFromString("0.03")
	defaultCommissionRate      = decimal.RequireFromString("0.15")

	minutesPerHour = decimal.NewFromInt(60)
	halfHour       = decimal.RequireFromString("0.5")
)

// Calculator carries the configurable platform rates. The zero value is not
// usable; construct with New or NewWithRates.
type Calculator struct {
	cancellationFeeRate decimal.Decimal
	commissionRate      decimal.Decimal
	minimumChargeMin    int32
}

// New returns a calculator with the platform defaults: 3% cancellation fee,
// 15% commission, 30-minute minimum charge.
func New() *Calculator {
	return NewWithRates(defaultCancellationFeeRate, defaultCommissionRate, MinimumChargeMinutes)
}

// NewWithRates returns a calculator with explicit rates. Non-positive
// minimumChargeMin falls back to the default floor.
func NewWithRates(cancellationFeeRate, commissionRate decimal.Decimal, minimumChargeMin int32) *Calculator {
	if minimumChargeMin <= 0 {
		minimumChargeMin = MinimumChargeMinutes
	}
	return &Calculator{
		cancellationFeeRate: cancellationFeeRate,
		commissionRate:      commissionRate,
		minimumChargeMin:    minimumChargeMin,
	}
}

// PlannedPrice prices the booked window up front: hourly rate times the whole
// booked hours (truncated). A sub-hour booking is charged the half-hour
// minimum so it is never free.
func (c *Calculator) PlannedPrice(hourlyRate decimal.Decimal, window domain.Window) decimal.Decimal {
	hours := decimal.NewFromInt32(window.Hours())
	price := hourlyRate.Mul(hours)
	minimum := hourlyRate.Mul(halfHour)
	if price.LessThan(minimum) {
		price = minimum
	}
	return price.Round(moneyPlaces)
}

// BillableMinutes converts actual usage into charged minutes, applying the
// minimum-charge floor regardless of true elapsed time.
func (c *Calculator) BillableMinutes(usageStart, usageStop time.Time) int32 {
	elapsed := int32(usageStop.Sub(usageStart) / time.Minute)
	if elapsed < c.minimumChargeMin {
		return c.minimumChargeMin
	}
	return elapsed
}

// FinalPrice prices actual usage at the same hourly rate used for the planned
// price: rate x billable minutes / 60.
func (c *Calculator) FinalPrice(hourlyRate decimal.Decimal, usageStart, usageStop time.Time) decimal.Decimal {
	minutes := decimal.NewFromInt32(c.BillableMinutes(usageStart, usageStop))
	return hourlyRate.Mul(minutes).Div(minutesPerHour).Round(moneyPlaces)
}

// RefundDue is the overpayment refund owed when actual usage undershoots the
// pre-paid window: max(0, planned - final). Never negative.
func (c *Calculator) RefundDue(planned, final decimal.Decimal) decimal.Decimal {
	due := planned.Sub(final)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// CancellationSplit divides a cancelled booking's total into the customer
// refund and the platform's cancellation fee. The fee is derived by
// subtraction so refund + fee always equals the total to the smallest
// currency unit.
func (c *Calculator) CancellationSplit(total decimal.Decimal) (refund, fee decimal.Decimal) {
	refund = total.Mul(decimal.NewFromInt(1).Sub(c.cancellationFeeRate)).Round(moneyPlaces)
	fee = total.Sub(refund)
	return refund, fee
}

// Commission is the platform's cut of a completed booking's final price.
// Informational for reporting; it does not reduce any party-visible charge.
func (c *Calculator) Commission(final decimal.Decimal) decimal.Decimal {
	return final.Mul(c.commissionRate).Round(moneyPlaces)
}
