package movies

import (
	"cinely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse movies
	publicMovies := router.Group("/movies")
	{
		publicMovies.GET("", controller.GetAllMovies)
		publicMovies.GET("/top", controller.GetTopRatedMovies)
		publicMovies.GET("/:movieId", controller.GetMovie)
	}

	// Admin routes - only staff can manage movies
	adminMovies := router.Group("/admin/movies")
	adminMovies.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminMovies.POST("", controller.CreateMovie)
		adminMovies.PUT("/:movieId", controller.UpdateMovie)
		adminMovies.DELETE("/:movieId", controller.DeleteMovie)
	}
}
