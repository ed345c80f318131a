package movies

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	GetAll(ctx context.Context, query MovieListQuery) ([]Movie, int64, error)
	GetTopRated(ctx context.Context, limit int) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *repository) GetAll(ctx context.Context, query MovieListQuery) ([]Movie, int64, error) {
	var movies []Movie
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Movie{})

	if query.Search != "" {
		baseQuery = baseQuery.Where("title ILIKE ?", "%"+query.Search+"%")
	}
	if query.Genre != "" {
		baseQuery = baseQuery.Where("genre = ?", query.Genre)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&movies).Error

	return movies, totalCount, err
}

func (r *repository) GetTopRated(ctx context.Context, limit int) ([]Movie, error) {
	var movies []Movie
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *repository) Update(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Movie{}).Error
}

// CalculateTotalPages is a helper for pagination metadata
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
