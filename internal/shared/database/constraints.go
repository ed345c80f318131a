package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// A (seat, projection) pair may only be reserved once. The availability
	// check and the commit are not wrapped in one transaction, so two
	// concurrent requests can both pass the check; this unique index makes
	// the second insert fail instead of double-booking.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_projection
		ON reservations (seat_id, projection_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for reservation queries by projection
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_projection_id
		ON reservations (projection_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
