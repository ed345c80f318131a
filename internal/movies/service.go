package movies

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"cinely/internal/shared/constants"
	"cinely/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type Service interface {
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	GetAllMovies(ctx context.Context, query MovieListQuery) (*PaginatedMovies, error)
	GetTopRatedMovies(ctx context.Context, limit int) ([]Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
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

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	movie := &Movie{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		DurationMin: req.DurationMin,
		Rating:      req.Rating,
		ReleaseYear: req.ReleaseYear,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.invalidateListCaches(ctx)
	return movie, nil
}

func (s *service) GetMovieByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	cacheKey := constants.CacheKeyMovie + id.String()

	if s.cache != nil {
		var cached Movie
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, movie, constants.TTLMovie); err != nil {
			log.Printf("Warning: failed to cache movie: %v", err)
		}
	}

	return movie, nil
}

func (s *service) GetAllMovies(ctx context.Context, query MovieListQuery) (*PaginatedMovies, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	movies, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return &PaginatedMovies{
		Movies:     movies,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

func (s *service) GetTopRatedMovies(ctx context.Context, limit int) ([]Movie, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := constants.CacheKeyTopMovies + strconv.Itoa(limit)

	if s.cache != nil {
		var cached []Movie
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	movies, err := s.repo.GetTopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated movies: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, movies, constants.TTLTopMovies); err != nil {
			log.Printf("Warning: failed to cache top rated movies: %v", err)
		}
	}

	return movies, nil
}

func (s *service) UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.DurationMin != nil {
		movie.DurationMin = *req.DurationMin
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.ReleaseYear != nil {
		movie.ReleaseYear = *req.ReleaseYear
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.invalidateMovieCaches(ctx, id)
	return movie, nil
}

func (s *service) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to get movie: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	s.invalidateMovieCaches(ctx, id)
	return nil
}

func (s *service) invalidateMovieCaches(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CacheKeyMovie+id.String()); err != nil {
		log.Printf("Warning: failed to invalidate movie cache: %v", err)
	}
	s.invalidateListCaches(ctx)
}

func (s *service) invalidateListCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.CacheKeyTopMovies+"*"); err != nil {
		log.Printf("Warning: failed to invalidate top movies cache: %v", err)
	}
}
