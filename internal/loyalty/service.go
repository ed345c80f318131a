package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinely/internal/users"
)

var ErrUserNotFound = errors.New("user not found")

// Service awards bonus points to users. The reservation flow grants one
// point per seat on a successful commit.
type Service interface {
	IncreaseBonus(ctx context.Context, userID uuid.UUID, count int) (*users.User, error)
	GetBonus(ctx context.Context, userID uuid.UUID) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) IncreaseBonus(ctx context.Context, userID uuid.UUID, count int) (*users.User, error) {
	if count < 0 {
		return nil, fmt.Errorf("bonus count must not be negative, got %d", count)
	}

	if err := s.repo.IncrementBonus(ctx, userID, count); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to increase bonus: %w", err)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *service) GetBonus(ctx context.Context, userID uuid.UUID) (int, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	return user.BonusPoints, nil
}
