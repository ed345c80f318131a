package cinemas

import (
	"time"

	"github.com/google/uuid"
)

type Cinema struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	City      string    `json:"city" gorm:"not null;size:100;index"`
	Address   string    `json:"address" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Cinema) TableName() string {
	return "cinemas"
}

type CreateCinemaRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	City    string `json:"city" binding:"required,min=2,max=100"`
	Address string `json:"address" binding:"required,min=3,max=255"`
}

type UpdateCinemaRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	City    *string `json:"city" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address" binding:"omitempty,min=3,max=255"`
}

type CinemaListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	City   string `form:"city"`
	Search string `form:"search"`
}

type PaginatedCinemas struct {
	Cinemas    []Cinema `json:"cinemas"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
