package service

import (
	"context"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/dispatch"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

type trackingService struct {
	bookingRepo     repository.BookingRepository
	tractorRepo     repository.TractorRepository
	userRepo        repository.UserRepository
	averageSpeedKmh float64
}

func NewTrackingService(
	bookingRepo repository.BookingRepository,
	tractorRepo repository.TractorRepository,
	userRepo repository.UserRepository,
	averageSpeedKmh float64,
) TrackingService {
	if averageSpeedKmh <= 0 {
		averageSpeedKmh = dispatch.DefaultAverageSpeedKmh
	}
	return &trackingService{
		bookingRepo:     bookingRepo,
		tractorRepo:     tractorRepo,
		userRepo:        userRepo,
		averageSpeedKmh: averageSpeedKmh,
	}
}

// GetTrackingPayload builds the dispatch view for a booking: where the
// tractor currently is, where it is headed, and a coarse distance/ETA
// estimate. The estimate assumes a straight great-circle path at a fixed
// average speed; it is not a routed ETA.
func (s *trackingService) GetTrackingPayload(ctx context.Context, actorID, bookingID int32) (*TrackingPayload, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != actorID {
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !actor.IsAdmin() {
			return nil, &domain.UnauthorizedError{ActorID: actorID, Action: "view tracking"}
		}
	}

	tractor, err := s.tractorRepo.GetByID(ctx, booking.TractorID)
	if err != nil {
		return nil, err
	}
	return s.buildPayload(booking, tractor), nil
}

// GetLatestDispatch returns the tracking view for a tractor's most recent
// booking, for the admin dispatch board.
func (s *trackingService) GetLatestDispatch(ctx context.Context, tractorID int32) (*TrackingPayload, error) {
	tractor, err := s.tractorRepo.GetByID(ctx, tractorID)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.LatestByTractor(ctx, tractorID)
	if err != nil {
		return nil, err
	}
	return s.buildPayload(booking, tractor), nil
}

func (s *trackingService) buildPayload(booking *domain.Booking, tractor *domain.Tractor) *TrackingPayload {
	payload := &TrackingPayload{
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		Status:          booking.Status,
		TractorID:       tractor.ID,
		TractorStatus:   tractor.Status,
		CurrentLat:      tractor.Lat,
		CurrentLng:      tractor.Lng,
		LocationName:    tractor.LocationName,
		AverageSpeedKmh: s.averageSpeedKmh,
	}

	// Prefer the tractor's in-flight destination; fall back to the booking's
	// recorded delivery destination once the tractor's copy has been cleared.
	destLat, destLng, destAddress := tractor.DestLat, tractor.DestLng, tractor.DestAddress
	if destLat == nil || destLng == nil {
		destLat, destLng, destAddress = booking.DestLat, booking.DestLng, booking.DestAddress
	}
	payload.DestLat = destLat
	payload.DestLng = destLng
	payload.DestAddress = destAddress

	if tractor.HasPosition() && destLat != nil && destLng != nil {
		km := dispatch.DistanceKm(*tractor.Lat, *tractor.Lng, *destLat, *destLng)
		eta := dispatch.ETAMinutesAtSpeed(km, s.averageSpeedKmh)
		payload.DistanceKm = &km
		payload.ETAMinutes = &eta
	}
	return payload
}
