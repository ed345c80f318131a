package seats

import (
	"time"

	"github.com/google/uuid"
)

// Seat is one physical seat within an auditorium grid.
// Row and Number are 1-based; a seat never moves once created, the grid
// only changes through an administrative auditorium resize.
type Seat struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	AuditoriumID uuid.UUID `json:"auditorium_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_auditorium_row_number"`
	Row          int       `json:"row" gorm:"not null;uniqueIndex:idx_auditorium_row_number"`
	Number       int       `json:"number" gorm:"not null;check:number > 0;uniqueIndex:idx_auditorium_row_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// SeatResponse for API responses
type SeatResponse struct {
	ID           string `json:"id"`
	AuditoriumID string `json:"auditorium_id"`
	Row          int    `json:"row"`
	Number       int    `json:"number"`
}

func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:           s.ID.String(),
		AuditoriumID: s.AuditoriumID.String(),
		Row:          s.Row,
		Number:       s.Number,
	}
}
