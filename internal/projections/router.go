package projections

import (
	"github.com/gin-gonic/gin"

	"cinely/internal/shared/middleware"
)

func SetupProjectionRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse the schedule
	public := router.Group("/projections")
	{
		public.GET("", controller.GetAllProjections)
		public.GET("/:projectionId", controller.GetProjection)
	}

	// Admin routes
	admin := router.Group("/admin/projections")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateProjection)
		admin.PUT("/:projectionId", controller.UpdateProjection)
		admin.DELETE("/:projectionId", controller.DeleteProjection)
	}
}
