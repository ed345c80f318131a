package reservations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Reservation, error)
	GetByProjectionID(ctx context.Context, projectionID uuid.UUID) ([]Reservation, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	Insert(ctx context.Context, reservation *Reservation) error
	DeleteByProjectionID(ctx context.Context, projectionID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).Find(&reservations).Error
	return reservations, err
}

func (r *repository) GetByProjectionID(ctx context.Context, projectionID uuid.UUID) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("projection_id = ?", projectionID).
		Find(&reservations).Error
	return reservations, err
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

// Insert is the only write path for a reservation. The unique
// (seat_id, projection_id) constraint makes a lost check-then-act race
// surface here as a storage error instead of a silent double booking.
func (r *repository) Insert(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *repository) DeleteByProjectionID(ctx context.Context, projectionID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("projection_id = ?", projectionID).
		Delete(&Reservation{})
	return result.RowsAffected, result.Error
}
