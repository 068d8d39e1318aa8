package service

import (
	"context"

	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/domain"
	"github.com/sstreamcode/TractorBookingSystem-sub000/internal/repository"
)

type tractorService struct {
	tractorRepo repository.TractorRepository
	userRepo    repository.UserRepository
}

func NewTractorService(tractorRepo repository.TractorRepository, userRepo repository.UserRepository) TractorService {
	return &tractorService{
		tractorRepo: tractorRepo,
		userRepo:    userRepo,
	}
}

func (s *tractorService) AddTractor(ctx context.Context, tractor *domain.Tractor) error {
	if _, err := s.userRepo.GetByID(ctx, tractor.OwnerID); err != nil {
		return err
	}
	return s.tractorRepo.Create(ctx, tractor)
}

func (s *tractorService) GetTractor(ctx context.Context, id int32) (*domain.Tractor, error) {
	tractor, err := s.tractorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetByID(ctx, tractor.OwnerID); err == nil {
		tractor.Owner = owner
	}
	return tractor, nil
}

func (s *tractorService) UpdateTractor(ctx context.Context, tractor *domain.Tractor) error {
	return s.tractorRepo.Update(ctx, tractor)
}

func (s *tractorService) DeleteTractor(ctx context.Context, id int32) error {
	return s.tractorRepo.Delete(ctx, id)
}

func (s *tractorService) ListTractors(ctx context.Context, page, pageSize int32) ([]domain.Tractor, int32, error) {
	return s.tractorRepo.List(ctx, page, pageSize)
}

func (s *tractorService) ListMyTractors(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tractor, int32, error) {
	return s.tractorRepo.ListByOwner(ctx, ownerID, page, pageSize)
}
