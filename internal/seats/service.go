package seats

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinely/internal/shared/constants"
	"cinely/pkg/cache"
)

var ErrSeatNotFound = errors.New("seat not found")

// Service is the read side of the seat directory. Seat rows are written
// only by the auditoriums package when a grid is created or resized.
type Service interface {
	GetSeat(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetSeatsByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error)
	GetSeatsByAuditorium(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) GetSeat(ctx context.Context, id uuid.UUID) (*Seat, error) {
	seat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}
	return seat, nil
}

func (s *service) GetSeatsByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seats, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	// Every requested id must resolve; a missing seat is an infrastructure
	// error for callers, not a soft failure.
	if len(seats) != len(ids) {
		return nil, ErrSeatNotFound
	}

	return seats, nil
}

func (s *service) GetSeatsByAuditorium(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error) {
	cacheKey := constants.CacheKeySeatLayout + auditoriumID.String()

	if s.cache != nil {
		var cached []Seat
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	seats, err := s.repo.GetByAuditoriumID(ctx, auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats for auditorium: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, seats, constants.TTLSeatLayout); err != nil {
			log.Printf("Warning: failed to cache seat layout: %v", err)
		}
	}

	return seats, nil
}
