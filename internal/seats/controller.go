package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinely/internal/shared/utils/response"
)

type Controller interface {
	GetSeat(c *gin.Context)
	GetSeatsByAuditorium(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetSeat(c *gin.Context) {
	seatID, err := uuid.Parse(c.Param("seatId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	seat, err := ctrl.service.GetSeat(c.Request.Context(), seatID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrSeatNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat retrieved successfully", seat.ToResponse(), nil)
}

func (ctrl *controller) GetSeatsByAuditorium(c *gin.Context) {
	auditoriumID, err := uuid.Parse(c.Param("auditoriumId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid auditorium ID", nil, err.Error())
		return
	}

	seats, err := ctrl.service.GetSeatsByAuditorium(c.Request.Context(), auditoriumID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	resp := make([]SeatResponse, 0, len(seats))
	for i := range seats {
		resp = append(resp, seats[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved successfully", resp, nil)
}
