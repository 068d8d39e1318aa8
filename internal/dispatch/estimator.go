// Package dispatch contains pure geographic estimation helpers for delivery
// tracking. Both functions read caller-supplied positions and mutate nothing.
package dispatch

import "math"

const earthRadiusKm = 6371.0

// DefaultAverageSpeedKmh is the coarse cross-country speed assumption behind
// ETA estimates. This is deliberately not a routed ETA.
const DefaultAverageSpeedKmh = 25.0

// DistanceKm returns the great-circle (haversine) distance in kilometres
// between two points given in decimal degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ETAMinutes estimates travel time at the default average speed. Zero distance
// yields zero; any positive distance yields at least one minute.
func ETAMinutes(distanceKm float64) int {
	return ETAMinutesAtSpeed(distanceKm, DefaultAverageSpeedKmh)
}

// ETAMinutesAtSpeed is ETAMinutes with an explicit average speed in km/h.
func ETAMinutesAtSpeed(distanceKm, speedKmh float64) int {
	if distanceKm <= 0 {
		return 0
	}
	if speedKmh <= 0 {
		speedKmh = DefaultAverageSpeedKmh
	}
	minutes := int(math.Round(distanceKm / speedKmh * 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
