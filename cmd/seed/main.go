package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cinely/internal/auditoriums"
	"cinely/internal/cinemas"
	"cinely/internal/movies"
	"cinely/internal/projections"
	"cinely/internal/seats"
	"cinely/internal/shared/config"
	"cinely/internal/shared/database"
	"cinely/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Cinely Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"reservations",
		"projections",
		"seats",
		"auditoriums",
		"cinemas",
		"movies",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	cinemaIDs, err := s.SeedCinemas()
	if err != nil {
		return fmt.Errorf("failed to seed cinemas: %w", err)
	}

	auditoriumIDs, err := s.SeedAuditoriums(cinemaIDs)
	if err != nil {
		return fmt.Errorf("failed to seed auditoriums: %w", err)
	}

	movieIDs, err := s.SeedMovies()
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	if err := s.SeedProjections(movieIDs, auditoriumIDs); err != nil {
		return fmt.Errorf("failed to seed projections: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates a superuser, an admin and two regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"superuser", "Super", "User", "superuser@cinely.dev", users.RoleSuperuser},
		{"admin", "Admin", "User", "admin@cinely.dev", users.RoleAdmin},
		{"user1", "Ana", "Petrova", "ana.petrova@example.com", users.RoleUser},
		{"user2", "Marko", "Stojanov", "marko.stojanov@example.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedCinemas creates sample cinemas
func (s *Seeder) SeedCinemas() ([]uuid.UUID, error) {
	fmt.Println("  Seeding cinemas...")

	var cinemaIDs []uuid.UUID

	cinemasData := []struct {
		name    string
		city    string
		address string
	}{
		{"Cinely Center", "Skopje", "Macedonia Square 1"},
		{"Cinely Riverside", "Ohrid", "Kej Makedonija 15"},
	}

	for _, cinemaData := range cinemasData {
		cinema := cinemas.Cinema{
			ID:      uuid.New(),
			Name:    cinemaData.name,
			City:    cinemaData.city,
			Address: cinemaData.address,
		}

		if err := s.db.PostgreSQL.Create(&cinema).Error; err != nil {
			return nil, fmt.Errorf("failed to create cinema %s: %w", cinema.Name, err)
		}

		cinemaIDs = append(cinemaIDs, cinema.ID)
		fmt.Printf("    Created cinema: %s (%s)\n", cinema.Name, cinema.City)
	}

	return cinemaIDs, nil
}

// SeedAuditoriums creates auditoriums with full seat grids
func (s *Seeder) SeedAuditoriums(cinemaIDs []uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  Seeding auditoriums...")

	var auditoriumIDs []uuid.UUID

	auditoriumsData := []struct {
		cinemaIndex int
		name        string
		rows        int
		seatsPerRow int
	}{
		{0, "Hall 1", 8, 12},
		{0, "Hall 2", 6, 10},
		{1, "Grand Hall", 10, 14},
	}

	for _, auditoriumData := range auditoriumsData {
		auditorium := auditoriums.Auditorium{
			ID:          uuid.New(),
			CinemaID:    cinemaIDs[auditoriumData.cinemaIndex],
			Name:        auditoriumData.name,
			Rows:        auditoriumData.rows,
			SeatsPerRow: auditoriumData.seatsPerRow,
		}

		if err := s.db.PostgreSQL.Create(&auditorium).Error; err != nil {
			return nil, fmt.Errorf("failed to create auditorium %s: %w", auditorium.Name, err)
		}

		if err := s.createSeatGrid(auditorium.ID, auditoriumData.rows, auditoriumData.seatsPerRow); err != nil {
			return nil, fmt.Errorf("failed to create seat grid for %s: %w", auditorium.Name, err)
		}

		auditoriumIDs = append(auditoriumIDs, auditorium.ID)
		fmt.Printf("    Created auditorium: %s (%d seats)\n",
			auditorium.Name, auditoriumData.rows*auditoriumData.seatsPerRow)
	}

	return auditoriumIDs, nil
}

// createSeatGrid creates the full rows x seatsPerRow grid for an auditorium
func (s *Seeder) createSeatGrid(auditoriumID uuid.UUID, rows, seatsPerRow int) error {
	grid := make([]seats.Seat, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			grid = append(grid, seats.Seat{
				ID:           uuid.New(),
				AuditoriumID: auditoriumID,
				Row:          row,
				Number:       number,
			})
		}
	}
	return s.db.PostgreSQL.CreateInBatches(grid, 500).Error
}

// SeedMovies creates sample movies
func (s *Seeder) SeedMovies() ([]uuid.UUID, error) {
	fmt.Println("  Seeding movies...")

	var movieIDs []uuid.UUID

	moviesData := []struct {
		title       string
		description string
		genre       string
		durationMin int
		rating      float64
		releaseYear int
	}{
		{"The Long Night", "A detective untangles a decades-old disappearance.", "Thriller", 128, 8.4, 2023},
		{"Paper Planes", "Two strangers keep meeting at the same airport gate.", "Romance", 104, 7.1, 2024},
		{"Ironclad", "A heist crew takes on an impossible vault.", "Action", 117, 7.8, 2022},
		{"Quiet Fields", "A family farm faces its last harvest.", "Drama", 136, 8.9, 2021},
		{"Starfall", "First contact goes wrong in deep orbit.", "Sci-Fi", 142, 8.1, 2024},
	}

	for _, movieData := range moviesData {
		movie := movies.Movie{
			ID:          uuid.New(),
			Title:       movieData.title,
			Description: movieData.description,
			Genre:       movieData.genre,
			DurationMin: movieData.durationMin,
			Rating:      movieData.rating,
			ReleaseYear: movieData.releaseYear,
		}

		if err := s.db.PostgreSQL.Create(&movie).Error; err != nil {
			return nil, fmt.Errorf("failed to create movie %s: %w", movie.Title, err)
		}

		movieIDs = append(movieIDs, movie.ID)
		fmt.Printf("    Created movie: %s (%.1f)\n", movie.Title, movie.Rating)
	}

	return movieIDs, nil
}

// SeedProjections schedules each movie across the auditoriums
func (s *Seeder) SeedProjections(movieIDs, auditoriumIDs []uuid.UUID) error {
	fmt.Println("  Seeding projections...")

	for i, movieID := range movieIDs {
		for j, auditoriumID := range auditoriumIDs {
			projection := projections.Projection{
				ID:           uuid.New(),
				MovieID:      movieID,
				AuditoriumID: auditoriumID,
				StartsAt:     time.Now().AddDate(0, 0, i+1).Truncate(time.Hour).Add(time.Duration(18+j) * time.Hour),
				TicketPrice:  7.50 + float64(j),
			}

			if err := s.db.PostgreSQL.Create(&projection).Error; err != nil {
				return fmt.Errorf("failed to create projection: %w", err)
			}
		}
	}

	fmt.Printf("    Created %d projections\n", len(movieIDs)*len(auditoriumIDs))
	return nil
}
