package cinemas

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, cinema *Cinema) error
	GetByID(ctx context.Context, id uuid.UUID) (*Cinema, error)
	GetAll(ctx context.Context, query CinemaListQuery) ([]Cinema, int64, error)
	Update(ctx context.Context, cinema *Cinema) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cinema *Cinema) error {
	return r.db.WithContext(ctx).Create(cinema).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Cinema, error) {
	var cinema Cinema
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cinema).Error
	if err != nil {
		return nil, err
	}
	return &cinema, nil
}

func (r *repository) GetAll(ctx context.Context, query CinemaListQuery) ([]Cinema, int64, error) {
	var cinemas []Cinema
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Cinema{})

	if query.City != "" {
		baseQuery = baseQuery.Where("city = ?", query.City)
	}
	if query.Search != "" {
		baseQuery = baseQuery.Where("name ILIKE ?", "%"+query.Search+"%")
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&cinemas).Error

	return cinemas, totalCount, err
}

func (r *repository) Update(ctx context.Context, cinema *Cinema) error {
	return r.db.WithContext(ctx).Save(cinema).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Cinema{}).Error
}

// CalculateTotalPages is a helper for pagination metadata
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
