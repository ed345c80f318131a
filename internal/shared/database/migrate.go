package database

import (
	"cinely/internal/auditoriums"
	"cinely/internal/cinemas"
	"cinely/internal/movies"
	"cinely/internal/projections"
	"cinely/internal/reservations"
	"cinely/internal/seats"
	"cinely/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&cinemas.Cinema{},
		&auditoriums.Auditorium{},
		&seats.Seat{},
		&projections.Projection{},
		&reservations.Reservation{},
	)
}
