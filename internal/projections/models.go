package projections

import (
	"time"

	"github.com/google/uuid"
)

// Projection is a single screening of a movie in an auditorium.
type Projection struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID      uuid.UUID `json:"movie_id" gorm:"type:uuid;not null;index"`
	AuditoriumID uuid.UUID `json:"auditorium_id" gorm:"type:uuid;not null;index"`
	StartsAt     time.Time `json:"starts_at" gorm:"not null;index"`
	TicketPrice  float64   `json:"ticket_price" gorm:"not null;check:ticket_price >= 0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Projection) TableName() string {
	return "projections"
}

type CreateProjectionRequest struct {
	MovieID      string    `json:"movie_id" binding:"required,uuid"`
	AuditoriumID string    `json:"auditorium_id" binding:"required,uuid"`
	StartsAt     time.Time `json:"starts_at" binding:"required"`
	TicketPrice  float64   `json:"ticket_price" binding:"required,min=0"`
}

type UpdateProjectionRequest struct {
	StartsAt    *time.Time `json:"starts_at" binding:"omitempty"`
	TicketPrice *float64   `json:"ticket_price" binding:"omitempty,min=0"`
}

type ProjectionListQuery struct {
	MovieID      string `form:"movie_id" binding:"omitempty,uuid"`
	AuditoriumID string `form:"auditorium_id" binding:"omitempty,uuid"`
	From         string `form:"from"`
	To           string `form:"to"`
}

type ProjectionResponse struct {
	ID           string    `json:"id"`
	MovieID      string    `json:"movie_id"`
	AuditoriumID string    `json:"auditorium_id"`
	StartsAt     time.Time `json:"starts_at"`
	TicketPrice  float64   `json:"ticket_price"`
}

func (p *Projection) ToResponse() ProjectionResponse {
	return ProjectionResponse{
		ID:           p.ID.String(),
		MovieID:      p.MovieID.String(),
		AuditoriumID: p.AuditoriumID.String(),
		StartsAt:     p.StartsAt,
		TicketPrice:  p.TicketPrice,
	}
}
