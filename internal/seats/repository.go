package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error)
	GetByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error)
	CreateBulk(ctx context.Context, seats []Seat) error
	DeleteByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) error
	DeleteOutsideGrid(ctx context.Context, auditoriumID uuid.UUID, rows, seatsPerRow int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&seats).Error
	return seats, err
}

func (r *repository) GetByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("auditorium_id = ?", auditoriumID).
		Order(`"row" ASC, number ASC`).
		Find(&seats).Error
	return seats, err
}

func (r *repository) CreateBulk(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(seats, 500).Error
}

func (r *repository) DeleteByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("auditorium_id = ?", auditoriumID).
		Delete(&Seat{}).Error
}

// DeleteOutsideGrid removes seats that no longer fit a shrunk auditorium grid
func (r *repository) DeleteOutsideGrid(ctx context.Context, auditoriumID uuid.UUID, rows, seatsPerRow int) error {
	return r.db.WithContext(ctx).
		// "row" needs quoting, it is a reserved word in PostgreSQL
		Where(`auditorium_id = ? AND ("row" > ? OR number > ?)`, auditoriumID, rows, seatsPerRow).
		Delete(&Seat{}).Error
}
