package loyalty

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinely/internal/users"
)

type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*users.User, error)
	IncrementBonus(ctx context.Context, id uuid.UUID, count int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IncrementBonus adds count points atomically in the database, so
// concurrent reservations by the same user never lose an update.
func (r *repository) IncrementBonus(ctx context.Context, id uuid.UUID, count int) error {
	result := r.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", id).
		Update("bonus_points", gorm.Expr("bonus_points + ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
