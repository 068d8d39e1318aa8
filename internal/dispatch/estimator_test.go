package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("ZeroForSamePoint", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(27.7172, 85.3240, 27.7172, 85.3240))
	})

	t.Run("OneDegreeAlongEquator", func(t *testing.T) {
		// One degree of longitude at the equator is ~111.19 km.
		got := DistanceKm(0, 0, 0, 1)
		assert.InDelta(t, 111.19, got, 0.05)
	})

	t.Run("Symmetric", func(t *testing.T) {
		ab := DistanceKm(27.7172, 85.3240, 27.6710, 85.4298)
		ba := DistanceKm(27.6710, 85.4298, 27.7172, 85.3240)
		assert.InDelta(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 0.0)
	})
}

func TestETAMinutes(t *testing.T) {
	t.Run("ZeroDistance", func(t *testing.T) {
		assert.Equal(t, 0, ETAMinutes(0))
		assert.Equal(t, 0, ETAMinutes(-1))
	})

	t.Run("AtLeastOneMinute", func(t *testing.T) {
		assert.Equal(t, 1, ETAMinutes(0.1))
	})

	t.Run("DefaultSpeed", func(t *testing.T) {
		// 25 km at 25 km/h is exactly one hour.
		assert.Equal(t, 60, ETAMinutes(25))
	})

	t.Run("Rounds", func(t *testing.T) {
		// 111.19 km / 25 km/h = 266.9 minutes.
		got := ETAMinutesAtSpeed(DistanceKm(0, 0, 0, 1), 25)
		assert.Equal(t, 267, got)
	})

	t.Run("NonPositiveSpeedFallsBack", func(t *testing.T) {
		assert.Equal(t, ETAMinutes(50), ETAMinutesAtSpeed(50, 0))
		assert.Equal(t, ETAMinutes(50), ETAMinutesAtSpeed(50, -10))
	})
}
