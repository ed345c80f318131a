package cinemas

import (
	"cinely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCinemaRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse cinemas
	publicCinemas := router.Group("/cinemas")
	{
		publicCinemas.GET("", controller.GetAllCinemas)
		publicCinemas.GET("/:cinemaId", controller.GetCinema)
	}

	// Admin routes - only staff can manage cinemas
	adminCinemas := router.Group("/admin/cinemas")
	adminCinemas.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminCinemas.POST("", controller.CreateCinema)
		adminCinemas.PUT("/:cinemaId", controller.UpdateCinema)
		adminCinemas.DELETE("/:cinemaId", controller.DeleteCinema)
	}
}
