package projections

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinely/internal/auditoriums"
	"cinely/internal/movies"
	"cinely/pkg/logger"
)

var ErrProjectionNotFound = errors.New("projection not found")

// ReservationPurger removes every reservation tied to a projection.
// Implemented by the reservations repository; declared here so deleting a
// projection does not pull in the whole reservations package.
type ReservationPurger interface {
	DeleteByProjectionID(ctx context.Context, projectionID uuid.UUID) (int64, error)
}

type Service interface {
	CreateProjection(ctx context.Context, req CreateProjectionRequest) (*Projection, error)
	GetProjectionByID(ctx context.Context, id uuid.UUID) (*Projection, error)
	GetAllProjections(ctx context.Context, query ProjectionListQuery) ([]Projection, error)
	UpdateProjection(ctx context.Context, id uuid.UUID, req UpdateProjectionRequest) (*Projection, error)
	DeleteProjection(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo           Repository
	movieRepo      movies.Repository
	auditoriumRepo auditoriums.Repository
	reservations   ReservationPurger
	log            *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository, auditoriumRepo auditoriums.Repository, reservations ReservationPurger) Service {
	return &service{
		repo:           repo,
		movieRepo:      movieRepo,
		auditoriumRepo: auditoriumRepo,
		reservations:   reservations,
		log:            logger.GetDefault(),
	}
}

func (s *service) CreateProjection(ctx context.Context, req CreateProjectionRequest) (*Projection, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}
	auditoriumID, err := uuid.Parse(req.AuditoriumID)
	if err != nil {
		return nil, fmt.Errorf("invalid auditorium id: %w", err)
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, movies.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if _, err := s.auditoriumRepo.GetByID(ctx, auditoriumID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auditoriums.ErrAuditoriumNotFound
		}
		return nil, fmt.Errorf("failed to get auditorium: %w", err)
	}

	projection := &Projection{
		ID:           uuid.New(),
		MovieID:      movieID,
		AuditoriumID: auditoriumID,
		StartsAt:     req.StartsAt,
		TicketPrice:  req.TicketPrice,
	}

	if err := s.repo.Create(ctx, projection); err != nil {
		return nil, fmt.Errorf("failed to create projection: %w", err)
	}

	return projection, nil
}

func (s *service) GetProjectionByID(ctx context.Context, id uuid.UUID) (*Projection, error) {
	projection, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectionNotFound
		}
		return nil, fmt.Errorf("failed to get projection: %w", err)
	}
	return projection, nil
}

func (s *service) GetAllProjections(ctx context.Context, query ProjectionListQuery) ([]Projection, error) {
	projections, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}
	return projections, nil
}

func (s *service) UpdateProjection(ctx context.Context, id uuid.UUID, req UpdateProjectionRequest) (*Projection, error) {
	projection, err := s.GetProjectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartsAt != nil {
		projection.StartsAt = *req.StartsAt
	}
	if req.TicketPrice != nil {
		projection.TicketPrice = *req.TicketPrice
	}

	if err := s.repo.Update(ctx, projection); err != nil {
		return nil, fmt.Errorf("failed to update projection: %w", err)
	}

	return projection, nil
}

// DeleteProjection removes a projection and every reservation made for it.
// Reservations go first so a crash in between leaves no reservations
// pointing at a missing projection.
func (s *service) DeleteProjection(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProjectionByID(ctx, id); err != nil {
		return err
	}

	purged, err := s.reservations.DeleteByProjectionID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservations for projection: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete projection: %w", err)
	}

	s.log.LogProjectionDeleted(ctx, id.String(), purged)
	return nil
}
