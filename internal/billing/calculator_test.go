package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func window(start time.Time, dur time.Duration) domain.Window {
	return domain.Window{StartAt: start, EndAt: start.Add(dur)}
}

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestCalculator_PlannedPrice(t *testing.T) {
	calc := New()
	rate := d("500")

	t.Run("WholeHours", func(t *testing.T) {
		got := calc.PlannedPrice(rate, window(t0, 2*time.Hour))
		assert.True(t, got.Equal(d("1000")), "got %s", got)
	})

	t.Run("PartialHourTruncates", func(t *testing.T) {
		got := calc.PlannedPrice(rate, window(t0, 2*time.Hour+45*time.Minute))
		assert.True(t, got.Equal(d("1000")), "got %s", got)
	})

	t.Run("SubHourChargesHalfHourMinimum", func(t *testing.T) {
		got := calc.PlannedPrice(rate, window(t0, 20*time.Minute))
		assert.True(t, got.Equal(d("250")), "got %s", got)
	})
}

func TestCalculator_BillableMinutes(t *testing.T) {
	calc := New()

	t.Run("FloorsShortUsage", func(t *testing.T) {
		assert.Equal(t, int32(30), calc.BillableMinutes(t0, t0.Add(20*time.Minute)))
		assert.Equal(t, int32(30), calc.BillableMinutes(t0, t0.Add(1*time.Minute)))
	})

	t.Run("ExactFloorBoundary", func(t *testing.T) {
		assert.Equal(t, int32(30), calc.BillableMinutes(t0, t0.Add(30*time.Minute)))
	})

	t.Run("AboveFloorUsesElapsed", func(t *testing.T) {
		assert.Equal(t, int32(31), calc.BillableMinutes(t0, t0.Add(31*time.Minute)))
		assert.Equal(t, int32(120), calc.BillableMinutes(t0, t0.Add(2*time.Hour)))
	})
}

func TestCalculator_FinalPrice(t *testing.T) {
	calc := New()
	rate := d("500")

	t.Run("TwentyMinutesBillsHalfHour", func(t *testing.T) {
		got := calc.FinalPrice(rate, t0, t0.Add(20*time.Minute))
		assert.True(t, got.Equal(d("250")), "got %s", got)
	})

	t.Run("NinetyMinutes", func(t *testing.T) {
		got := calc.FinalPrice(rate, t0, t0.Add(90*time.Minute))
		assert.True(t, got.Equal(d("750")), "got %s", got)
	})

	t.Run("MonotonicInUsage", func(t *testing.T) {
		prev := calc.FinalPrice(rate, t0, t0.Add(30*time.Minute))
		for _, minutes := range []int{45, 60, 95, 180, 600} {
			cur := calc.FinalPrice(rate, t0, t0.Add(time.Duration(minutes)*time.Minute))
			assert.True(t, cur.GreaterThanOrEqual(prev), "final price dropped at %d minutes", minutes)
			prev = cur
		}
	})
}

func TestCalculator_RefundDue(t *testing.T) {
	calc := New()

	t.Run("Undershoot", func(t *testing.T) {
		got := calc.RefundDue(d("1000"), d("250"))
		assert.True(t, got.Equal(d("750")), "got %s", got)
	})

	t.Run("ExactUsage", func(t *testing.T) {
		got := calc.RefundDue(d("1000"), d("1000"))
		assert.True(t, got.IsZero())
	})

	t.Run("OvershootNeverNegative", func(t *testing.T) {
		got := calc.RefundDue(d("1000"), d("1200"))
		assert.True(t, got.IsZero())
	})
}

func TestCalculator_CancellationSplit(t *testing.T) {
	calc := New()

	t.Run("RoundAmount", func(t *testing.T) {
		refund, fee := calc.CancellationSplit(d("1000"))
		assert.True(t, refund.Equal(d("970")), "refund %s", refund)
		assert.True(t, fee.Equal(d("30")), "fee %s", fee)
	})

	t.Run("SplitAlwaysSumsToTotal", func(t *testing.T) {
		for _, total := range []string{"0.01", "0.99", "10.01", "333.33", "1234.56", "99999.99"} {
			refund, fee := calc.CancellationSplit(d(total))
			assert.True(t, refund.Add(fee).Equal(d(total)),
				"refund %s + fee %s != total %s", refund, fee, total)
			assert.False(t, refund.IsNegative())
			assert.False(t, fee.IsNegative())
		}
	})
}

func TestCalculator_Commission(t *testing.T) {
	calc := New()
	got := calc.Commission(d("250"))
	assert.True(t, got.Equal(d("37.50")), "got %s", got)
}

func TestNewWithRates(t *testing.T) {
	calc := NewWithRates(d("0.10"), d("0.20"), 15)

	refund, fee := calc.CancellationSplit(d("100"))
	assert.True(t, refund.Equal(d("90")), "refund %s", refund)
	assert.True(t, fee.Equal(d("10")), "fee %s", fee)

	assert.True(t, calc.Commission(d("100")).Equal(d("20")))
	assert.Equal(t, int32(15), calc.BillableMinutes(t0, t0.Add(5*time.Minute)))

	t.Run("NonPositiveFloorFallsBack", func(t *testing.T) {
		calc := NewWithRates(d("0.03"), d("0.15"), 0)
		assert.Equal(t, MinimumChargeMinutes, calc.BillableMinutes(t0, t0.Add(time.Minute)))
	})
}
