package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Reservation binds one seat to one projection for one user. Rows are only
// ever inserted; the single delete path is the projection-deletion cascade.
type Reservation struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SeatID       uuid.UUID `json:"seat_id" gorm:"type:uuid;not null;index"`
	ProjectionID uuid.UUID `json:"projection_id" gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// Info messages are consumed by existing API clients and must stay
// byte-for-byte stable, typos included.
const (
	MsgNoReservations = "There are no reservations"
	MsgSeatsFree      = "Seats are free to reserve"
	MsgSeatsTaken     = "Some of seats are already reserved"
	MsgSingleSeat     = "You passed only one seet"
	MsgDifferentRows  = "Seets are not next to each other and they are not in same row"
	MsgRowGap         = "Seets are not next to each other and exceeding the row"
)

// AvailabilityResult is the outcome of a point-in-time check against the
// reservation ledger. It is a snapshot, not a hold on the seats.
type AvailabilityResult struct {
	AreFree      bool        `json:"are_free"`
	InfoMessage  string      `json:"info_message"`
	TakenSeatIDs []uuid.UUID `json:"taken_seat_ids"`
}

// AdjacencyResult is the outcome of the contiguity check. A nil result
// (empty input) is distinct from a failed check.
type AdjacencyResult struct {
	Succeeded   bool   `json:"succeeded"`
	InfoMessage string `json:"info_message"`
}

type CheckAvailabilityRequest struct {
	SeatIDs      []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
	ProjectionID *string  `json:"projection_id" binding:"omitempty,uuid"`
}

type CheckAdjacencyRequest struct {
	SeatIDs []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
}

type CreateReservationRequest struct {
	ProjectionID string   `json:"projection_id" binding:"required,uuid"`
	SeatIDs      []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
}

// SeatsTakenPayload is the conflict body clients parse to highlight the
// seats that clashed.
type SeatsTakenPayload struct {
	ErrorMessage  string   `json:"errorMessage"`
	SeatsTakenIDs []string `json:"seatsTakenIds"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	SeatID       string `json:"seat_id"`
	ProjectionID string `json:"projection_id"`
	UserID       string `json:"user_id"`
}

func (r *Reservation) ToResponse() ReservationResponse {
	return ReservationResponse{
		ID:           r.ID.String(),
		SeatID:       r.SeatID.String(),
		ProjectionID: r.ProjectionID.String(),
		UserID:       r.UserID.String(),
	}
}
