package auditoriums

import (
	"github.com/gin-gonic/gin"

	"cinely/internal/shared/middleware"
)

func SetupAuditoriumRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	auditoriums := router.Group("/auditoriums")
	{
		auditoriums.GET("/:auditoriumId", controller.GetAuditorium)
	}

	cinemaAuditoriums := router.Group("/cinemas/:cinemaId/auditoriums")
	{
		cinemaAuditoriums.GET("", controller.GetAuditoriumsByCinema)
	}

	// Admin routes
	admin := router.Group("/admin/auditoriums")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateAuditorium)
		admin.PUT("/:auditoriumId", controller.UpdateAuditorium)
		admin.PUT("/:auditoriumId/resize", controller.ResizeAuditorium)
		admin.DELETE("/:auditoriumId", controller.DeleteAuditorium)
	}
}
