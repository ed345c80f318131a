package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeReservationConfirmed NotificationType = "RESERVATION_CONFIRMED"
	NotificationTypeProjectionCancelled  NotificationType = "PROJECTION_CANCELLED"
)

// ReservationNotification is the message published to Kafka when a
// reservation commits. Downstream consumers (email, push) are separate
// services and out of scope here.
type ReservationNotification struct {
	ID             uuid.UUID        `json:"id"`
	Type           NotificationType `json:"type"`
	RecipientID    uuid.UUID        `json:"recipient_id"`
	RecipientEmail string           `json:"recipient_email"`
	ProjectionID   uuid.UUID        `json:"projection_id"`
	SeatIDs        []uuid.UUID      `json:"seat_ids"`
	CreatedAt      time.Time        `json:"created_at"`
}

func NewReservationConfirmed(recipientID uuid.UUID, recipientEmail string, projectionID uuid.UUID, seatIDs []uuid.UUID) *ReservationNotification {
	return &ReservationNotification{
		ID:             uuid.New(),
		Type:           NotificationTypeReservationConfirmed,
		RecipientID:    recipientID,
		RecipientEmail: recipientEmail,
		ProjectionID:   projectionID,
		SeatIDs:        seatIDs,
		CreatedAt:      time.Now(),
	}
}

func (n *ReservationNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all of a user's notifications to one partition
// so they arrive in order.
func (n *ReservationNotification) GetPartitionKey() string {
	return n.RecipientID.String()
}
