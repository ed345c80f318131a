package cinemas

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cinely/internal/shared/constants"
	"cinely/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCinemaNotFound = errors.New("cinema not found")

type Service interface {
	CreateCinema(ctx context.Context, req CreateCinemaRequest) (*Cinema, error)
	GetCinemaByID(ctx context.Context, id uuid.UUID) (*Cinema, error)
	GetAllCinemas(ctx context.Context, query CinemaListQuery) (*PaginatedCinemas, error)
	UpdateCinema(ctx context.Context, id uuid.UUID, req UpdateCinemaRequest) (*Cinema, error)
	DeleteCinema(ctx context.Context, id uuid.UUID) error
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

func (s *service) CreateCinema(ctx context.Context, req CreateCinemaRequest) (*Cinema, error) {
	cinema := &Cinema{
		ID:      uuid.New(),
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}

	if err := s.repo.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("failed to create cinema: %w", err)
	}

	return cinema, nil
}

func (s *service) GetCinemaByID(ctx context.Context, id uuid.UUID) (*Cinema, error) {
	cacheKey := constants.CacheKeyCinema + id.String()

	if s.cache != nil {
		var cached Cinema
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	cinema, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, cinema, constants.TTLCinema); err != nil {
			log.Printf("Warning: failed to cache cinema: %v", err)
		}
	}

	return cinema, nil
}

func (s *service) GetAllCinemas(ctx context.Context, query CinemaListQuery) (*PaginatedCinemas, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	cinemas, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cinemas: %w", err)
	}

	return &PaginatedCinemas{
		Cinemas:    cinemas,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

func (s *service) UpdateCinema(ctx context.Context, id uuid.UUID, req UpdateCinemaRequest) (*Cinema, error) {
	cinema, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema: %w", err)
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}

	if err := s.repo.Update(ctx, cinema); err != nil {
		return nil, fmt.Errorf("failed to update cinema: %w", err)
	}

	s.invalidateCinemaCache(ctx, id)
	return cinema, nil
}

func (s *service) DeleteCinema(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCinemaNotFound
		}
		return fmt.Errorf("failed to get cinema: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cinema: %w", err)
	}

	s.invalidateCinemaCache(ctx, id)
	return nil
}

func (s *service) invalidateCinemaCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CacheKeyCinema+id.String()); err != nil {
		log.Printf("Warning: failed to invalidate cinema cache: %v", err)
	}
}
