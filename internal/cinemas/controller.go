package cinemas

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinely/internal/shared/utils/response"
)

type Controller interface {
	CreateCinema(c *gin.Context)
	GetCinema(c *gin.Context)
	GetAllCinemas(c *gin.Context)
	UpdateCinema(c *gin.Context)
	DeleteCinema(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateCinema(c *gin.Context) {
	var req CreateCinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cinema, err := ctrl.service.CreateCinema(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Cinema created successfully", cinema, nil)
}

func (ctrl *controller) GetCinema(c *gin.Context) {
	cinemaID, err := uuid.Parse(c.Param("cinemaId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid cinema ID", nil, err.Error())
		return
	}

	cinema, err := ctrl.service.GetCinemaByID(c.Request.Context(), cinemaID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrCinemaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cinema retrieved successfully", cinema, nil)
}

func (ctrl *controller) GetAllCinemas(c *gin.Context) {
	var query CinemaListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	cinemas, err := ctrl.service.GetAllCinemas(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cinemas retrieved successfully", cinemas, nil)
}

func (ctrl *controller) UpdateCinema(c *gin.Context) {
	cinemaID, err := uuid.Parse(c.Param("cinemaId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid cinema ID", nil, err.Error())
		return
	}

	var req UpdateCinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cinema, err := ctrl.service.UpdateCinema(c.Request.Context(), cinemaID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrCinemaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cinema updated successfully", cinema, nil)
}

func (ctrl *controller) DeleteCinema(c *gin.Context) {
	cinemaID, err := uuid.Parse(c.Param("cinemaId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid cinema ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteCinema(c.Request.Context(), cinemaID); err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrCinemaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cinema deleted successfully", nil, nil)
}
