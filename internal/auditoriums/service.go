package auditoriums

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinely/internal/cinemas"
	"cinely/internal/seats"
	"cinely/internal/shared/constants"
	"cinely/pkg/cache"
)

var ErrAuditoriumNotFound = errors.New("auditorium not found")

type Service interface {
	CreateAuditorium(ctx context.Context, req CreateAuditoriumRequest) (*Auditorium, error)
	GetAuditoriumByID(ctx context.Context, id uuid.UUID) (*Auditorium, error)
	GetAuditoriumsByCinema(ctx context.Context, cinemaID uuid.UUID) ([]Auditorium, error)
	UpdateAuditorium(ctx context.Context, id uuid.UUID, req UpdateAuditoriumRequest) (*Auditorium, error)
	ResizeAuditorium(ctx context.Context, id uuid.UUID, req ResizeAuditoriumRequest) (*Auditorium, error)
	DeleteAuditorium(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo       Repository
	seatRepo   seats.Repository
	cinemaRepo cinemas.Repository
	cache      cache.Service
}

func NewService(repo Repository, seatRepo seats.Repository, cinemaRepo cinemas.Repository, cacheService cache.Service) Service {
	return &service{
		repo:       repo,
		seatRepo:   seatRepo,
		cinemaRepo: cinemaRepo,
		cache:      cacheService,
	}
}

func (s *service) CreateAuditorium(ctx context.Context, req CreateAuditoriumRequest) (*Auditorium, error) {
	cinemaID, err := uuid.Parse(req.CinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema id: %w", err)
	}

	if _, err := s.cinemaRepo.GetByID(ctx, cinemaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cinemas.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema: %w", err)
	}

	auditorium := &Auditorium{
		ID:          uuid.New(),
		CinemaID:    cinemaID,
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}

	if err := s.repo.Create(ctx, auditorium); err != nil {
		return nil, fmt.Errorf("failed to create auditorium: %w", err)
	}

	grid := buildSeatGrid(auditorium.ID, req.Rows, req.SeatsPerRow, nil)
	if err := s.seatRepo.CreateBulk(ctx, grid); err != nil {
		return nil, fmt.Errorf("failed to create seat grid: %w", err)
	}

	return auditorium, nil
}

func (s *service) GetAuditoriumByID(ctx context.Context, id uuid.UUID) (*Auditorium, error) {
	auditorium, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditoriumNotFound
		}
		return nil, fmt.Errorf("failed to get auditorium: %w", err)
	}
	return auditorium, nil
}

func (s *service) GetAuditoriumsByCinema(ctx context.Context, cinemaID uuid.UUID) ([]Auditorium, error) {
	auditoriums, err := s.repo.GetByCinemaID(ctx, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auditoriums: %w", err)
	}
	return auditoriums, nil
}

func (s *service) UpdateAuditorium(ctx context.Context, id uuid.UUID, req UpdateAuditoriumRequest) (*Auditorium, error) {
	auditorium, err := s.GetAuditoriumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		auditorium.Name = *req.Name
	}

	if err := s.repo.Update(ctx, auditorium); err != nil {
		return nil, fmt.Errorf("failed to update auditorium: %w", err)
	}

	return auditorium, nil
}

// ResizeAuditorium reshapes the seat grid. Seats inside both the old and
// new dimensions keep their ids, so existing reservations on them survive.
func (s *service) ResizeAuditorium(ctx context.Context, id uuid.UUID, req ResizeAuditoriumRequest) (*Auditorium, error) {
	auditorium, err := s.GetAuditoriumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.seatRepo.GetByAuditoriumID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get current seat grid: %w", err)
	}

	missing := buildSeatGrid(id, req.Rows, req.SeatsPerRow, existing)
	if err := s.seatRepo.CreateBulk(ctx, missing); err != nil {
		return nil, fmt.Errorf("failed to grow seat grid: %w", err)
	}

	if err := s.seatRepo.DeleteOutsideGrid(ctx, id, req.Rows, req.SeatsPerRow); err != nil {
		return nil, fmt.Errorf("failed to shrink seat grid: %w", err)
	}

	auditorium.Rows = req.Rows
	auditorium.SeatsPerRow = req.SeatsPerRow
	if err := s.repo.Update(ctx, auditorium); err != nil {
		return nil, fmt.Errorf("failed to update auditorium: %w", err)
	}

	s.invalidateSeatLayoutCache(ctx, id)
	return auditorium, nil
}

func (s *service) DeleteAuditorium(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAuditoriumByID(ctx, id); err != nil {
		return err
	}

	if err := s.seatRepo.DeleteByAuditoriumID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete seats: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete auditorium: %w", err)
	}

	s.invalidateSeatLayoutCache(ctx, id)
	return nil
}

func (s *service) invalidateSeatLayoutCache(ctx context.Context, auditoriumID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CacheKeySeatLayout+auditoriumID.String()); err != nil {
		log.Printf("Warning: failed to invalidate seat layout cache: %v", err)
	}
}

// buildSeatGrid returns the seats of a rows x seatsPerRow grid that are not
// already present in existing.
func buildSeatGrid(auditoriumID uuid.UUID, rows, seatsPerRow int, existing []seats.Seat) []seats.Seat {
	present := make(map[[2]int]bool, len(existing))
	for i := range existing {
		present[[2]int{existing[i].Row, existing[i].Number}] = true
	}

	var grid []seats.Seat
	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			if present[[2]int{row, number}] {
				continue
			}
			grid = append(grid, seats.Seat{
				ID:           uuid.New(),
				AuditoriumID: auditoriumID,
				Row:          row,
				Number:       number,
			})
		}
	}
	return grid
}
