// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cinely/internal/auditoriums"
	"cinely/internal/auth"
	"cinely/internal/cinemas"
	"cinely/internal/loyalty"
	"cinely/internal/movies"
	"cinely/internal/notifications"
	"cinely/internal/payments"
	"cinely/internal/projections"
	"cinely/internal/reservations"
	"cinely/internal/seats"
	"cinely/internal/shared/config"
	"cinely/internal/shared/database"
	"cinely/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	producer notifications.Producer

	// Repositories and services shared across feature routers
	seatRepo        seats.Repository
	seatService     seats.Service
	cinemaRepo      cinemas.Repository
	movieRepo       movies.Repository
	auditoriumRepo  auditoriums.Repository
	reservationRepo reservations.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		cache:    cacheService,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	gorm := r.db.GetPostgreSQL()
	r.seatRepo = seats.NewRepository(gorm)
	r.seatService = seats.NewService(r.seatRepo, r.cache)
	r.cinemaRepo = cinemas.NewRepository(gorm)
	r.movieRepo = movies.NewRepository(gorm)
	r.auditoriumRepo = auditoriums.NewRepository(gorm)
	r.reservationRepo = reservations.NewRepository(gorm)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupMovieRoutes(api)
		r.setupCinemaRoutes(api)
		r.setupAuditoriumRoutes(api)
		r.setupSeatRoutes(api)
		r.setupProjectionRoutes(api)
		r.setupReservationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinely-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinely-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieService := movies.NewService(r.movieRepo, r.cache)
	movieController := movies.NewController(movieService)

	movies.SetupMovieRoutes(rg, movieController)
}

func (r *Router) setupCinemaRoutes(rg *gin.RouterGroup) {
	cinemaService := cinemas.NewService(r.cinemaRepo, r.cache)
	cinemaController := cinemas.NewController(cinemaService)

	cinemas.SetupCinemaRoutes(rg, cinemaController)
}

func (r *Router) setupAuditoriumRoutes(rg *gin.RouterGroup) {
	auditoriumService := auditoriums.NewService(r.auditoriumRepo, r.seatRepo, r.cinemaRepo, r.cache)
	auditoriumController := auditoriums.NewController(auditoriumService)

	auditoriums.SetupAuditoriumRoutes(rg, auditoriumController)
}

func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatController := seats.NewController(r.seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

func (r *Router) setupProjectionRoutes(rg *gin.RouterGroup) {
	projectionRepo := projections.NewRepository(r.db.GetPostgreSQL())
	// The reservation repository doubles as the purger for the
	// projection-deletion cascade.
	projectionService := projections.NewService(projectionRepo, r.movieRepo, r.auditoriumRepo, r.reservationRepo)
	projectionController := projections.NewController(projectionService)

	projections.SetupProjectionRoutes(rg, projectionController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	loyaltyService := loyalty.NewService(loyalty.NewRepository(r.db.GetPostgreSQL()))
	paymentClient := payments.NewStubClient()

	reservationService := reservations.NewService(r.reservationRepo, r.seatService, paymentClient, loyaltyService, r.producer)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}
