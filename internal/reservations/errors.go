package reservations

import (
	"errors"

	"github.com/google/uuid"
)

// ErrBonusUnavailable is returned when the loyalty collaborator yields no
// user for the reservation's bonus grant.
var ErrBonusUnavailable = errors.New("failed to apply loyalty bonus")

// SeatsTakenError carries the exact set of conflicting seat ids so callers
// can show which seats clashed instead of a generic conflict.
type SeatsTakenError struct {
	Message       string
	SeatsTakenIDs []uuid.UUID
}

func (e *SeatsTakenError) Error() string {
	return e.Message
}

// PaymentError surfaces the payment collaborator's message verbatim.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}
