package seats

import (
	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - browsing the seat layout needs no auth
	seats := router.Group("/seats")
	{
		seats.GET("/:seatId", controller.GetSeat)
	}

	auditoriumSeats := router.Group("/auditoriums/:auditoriumId/seats")
	{
		auditoriumSeats.GET("", controller.GetSeatsByAuditorium)
	}
}
