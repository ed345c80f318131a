package auditoriums

import (
	"time"

	"github.com/google/uuid"
)

// Auditorium is a screening room inside a cinema. Its seat grid is
// rectangular: Rows x SeatsPerRow seats, generated when the auditorium
// is created and regenerated on resize.
type Auditorium struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CinemaID    uuid.UUID `json:"cinema_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Rows        int       `json:"rows" gorm:"not null;check:rows > 0"`
	SeatsPerRow int       `json:"seats_per_row" gorm:"not null;check:seats_per_row > 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Auditorium) TableName() string {
	return "auditoriums"
}

type CreateAuditoriumRequest struct {
	CinemaID    string `json:"cinema_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Rows        int    `json:"rows" binding:"required,min=1,max=100"`
	SeatsPerRow int    `json:"seats_per_row" binding:"required,min=1,max=100"`
}

type UpdateAuditoriumRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

// ResizeAuditoriumRequest changes the grid dimensions. Shrinking drops the
// seats outside the new grid; growing creates the missing ones.
type ResizeAuditoriumRequest struct {
	Rows        int `json:"rows" binding:"required,min=1,max=100"`
	SeatsPerRow int `json:"seats_per_row" binding:"required,min=1,max=100"`
}

type AuditoriumResponse struct {
	ID          string `json:"id"`
	CinemaID    string `json:"cinema_id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	SeatCount   int    `json:"seat_count"`
}

func (a *Auditorium) ToResponse() AuditoriumResponse {
	return AuditoriumResponse{
		ID:          a.ID.String(),
		CinemaID:    a.CinemaID.String(),
		Name:        a.Name,
		Rows:        a.Rows,
		SeatsPerRow: a.SeatsPerRow,
		SeatCount:   a.Rows * a.SeatsPerRow,
	}
}
