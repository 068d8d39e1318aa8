package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TractorStatus string

const (
	TractorStatusIdle  TractorStatus = "IDLE"
	TractorStatusInUse TractorStatus = "IN_USE"
)

type Tractor struct {
	ID          int32           `json:"id"`
	OwnerID     int32           `json:"owner_id"`
	Owner       *User           `json:"owner,omitempty"` // Populated when fetching tractor details
	Name        string          `json:"name"`
	Model       string          `json:"model"`
	Description string          `json:"description"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Quantity    int32           `json:"quantity"`
	Status      TractorStatus   `json:"status"`

	// Last known position.
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	LocationName string   `json:"location_name"`

	// Destination of the delivery currently in flight, if any. Cleared when
	// the delivery completes.
	DestLat     *float64 `json:"dest_lat,omitempty"`
	DestLng     *float64 `json:"dest_lng,omitempty"`
	DestAddress string   `json:"dest_address"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// HasPosition reports whether a current position is recorded.
func (t *Tractor) HasPosition() bool {
	return t.Lat != nil && t.Lng != nil
}

// HasDestination reports whether a delivery destination is in flight.
func (t *Tractor) HasDestination() bool {
	return t.DestLat != nil && t.DestLng != nil
}
