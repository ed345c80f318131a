package auditoriums

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, auditorium *Auditorium) error
	GetByID(ctx context.Context, id uuid.UUID) (*Auditorium, error)
	GetByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]Auditorium, error)
	Update(ctx context.Context, auditorium *Auditorium) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, auditorium *Auditorium) error {
	return r.db.WithContext(ctx).Create(auditorium).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Auditorium, error) {
	var auditorium Auditorium
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&auditorium).Error
	if err != nil {
		return nil, err
	}
	return &auditorium, nil
}

func (r *repository) GetByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]Auditorium, error) {
	var auditoriums []Auditorium
	err := r.db.WithContext(ctx).
		Where("cinema_id = ?", cinemaID).
		Order("name ASC").
		Find(&auditoriums).Error
	return auditoriums, err
}

func (r *repository) Update(ctx context.Context, auditorium *Auditorium) error {
	return r.db.WithContext(ctx).Save(auditorium).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Auditorium{}).Error
}
