package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded payment against a booking. Bookings with payment
// records are only removed after their payments are removed.
type Payment struct {
	ID        int32           `json:"id"`
	BookingID int32           `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	CreatedOn time.Time       `json:"created_on"`
}
