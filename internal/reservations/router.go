package reservations

import (
	"github.com/gin-gonic/gin"

	"cinely/internal/shared/middleware"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - seat pickers probe these before checkout
	public := router.Group("/reservations")
	{
		public.POST("/check-availability", controller.CheckAvailability)
		public.POST("/check-adjacency", controller.CheckAdjacency)
	}

	// Authenticated routes
	authed := router.Group("/reservations")
	authed.Use(middleware.JWTAuth())
	{
		authed.POST("", controller.Reserve)
		authed.GET("/mine", controller.GetMyReservations)
	}

	// Admin routes
	admin := router.Group("/admin/reservations")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.GetAllReservations)
	}
}
