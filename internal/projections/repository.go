package projections

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, projection *Projection) error
	GetByID(ctx context.Context, id uuid.UUID) (*Projection, error)
	GetAll(ctx context.Context, query ProjectionListQuery) ([]Projection, error)
	Update(ctx context.Context, projection *Projection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, projection *Projection) error {
	return r.db.WithContext(ctx).Create(projection).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Projection, error) {
	var projection Projection
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&projection).Error
	if err != nil {
		return nil, err
	}
	return &projection, nil
}

func (r *repository) GetAll(ctx context.Context, query ProjectionListQuery) ([]Projection, error) {
	db := r.db.WithContext(ctx).Model(&Projection{})

	if query.MovieID != "" {
		db = db.Where("movie_id = ?", query.MovieID)
	}
	if query.AuditoriumID != "" {
		db = db.Where("auditorium_id = ?", query.AuditoriumID)
	}
	if query.From != "" {
		if from, err := time.Parse(time.RFC3339, query.From); err == nil {
			db = db.Where("starts_at >= ?", from)
		}
	}
	if query.To != "" {
		if to, err := time.Parse(time.RFC3339, query.To); err == nil {
			db = db.Where("starts_at <= ?", to)
		}
	}

	var projections []Projection
	err := db.Order("starts_at ASC").Find(&projections).Error
	return projections, err
}

func (r *repository) Update(ctx context.Context, projection *Projection) error {
	return r.db.WithContext(ctx).Save(projection).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Projection{}).Error
}
