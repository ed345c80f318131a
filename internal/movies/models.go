package movies

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Genre       string    `json:"genre" gorm:"not null;size:100"`
	DurationMin int       `json:"duration_min" gorm:"not null;check:duration_min > 0"`
	Rating      float64   `json:"rating" gorm:"not null;default:0;check:rating >= 0 AND rating <= 10"`
	ReleaseYear int       `json:"release_year" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Movie) TableName() string {
	return "movies"
}

type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	Genre       string  `json:"genre" binding:"required,min=2,max=100"`
	DurationMin int     `json:"duration_min" binding:"required,min=1,max=600"`
	Rating      float64 `json:"rating" binding:"omitempty,min=0,max=10"`
	ReleaseYear int     `json:"release_year" binding:"required,min=1888,max=2100"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Genre       *string  `json:"genre" binding:"omitempty,min=2,max=100"`
	DurationMin *int     `json:"duration_min" binding:"omitempty,min=1,max=600"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=10"`
	ReleaseYear *int     `json:"release_year" binding:"omitempty,min=1888,max=2100"`
}

type MovieListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
	Genre  string `form:"genre"`
}

type PaginatedMovies struct {
	Movies     []Movie `json:"movies"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
