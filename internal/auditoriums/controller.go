package auditoriums

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinely/internal/cinemas"
	"cinely/internal/shared/utils/response"
)

type Controller interface {
	CreateAuditorium(c *gin.Context)
	GetAuditorium(c *gin.Context)
	GetAuditoriumsByCinema(c *gin.Context)
	UpdateAuditorium(c *gin.Context)
	ResizeAuditorium(c *gin.Context)
	DeleteAuditorium(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateAuditorium(c *gin.Context) {
	var req CreateAuditoriumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	auditorium, err := ctrl.service.CreateAuditorium(c.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, cinemas.ErrCinemaNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Auditorium created successfully", auditorium.ToResponse(), nil)
}

func (ctrl *controller) GetAuditorium(c *gin.Context) {
	id, err := uuid.Parse(c.Param("auditoriumId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid auditorium ID", nil, err.Error())
		return
	}

	auditorium, err := ctrl.service.GetAuditoriumByID(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrAuditoriumNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Auditorium retrieved successfully", auditorium.ToResponse(), nil)
}

func (ctrl *controller) GetAuditoriumsByCinema(c *gin.Context) {
	cinemaID, err := uuid.Parse(c.Param("cinemaId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid cinema ID", nil, err.Error())
		return
	}

	auditoriums, err := ctrl.service.GetAuditoriumsByCinema(c.Request.Context(), cinemaID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	resp := make([]AuditoriumResponse, 0, len(auditoriums))
	for i := range auditoriums {
		resp = append(resp, auditoriums[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusOK, "Auditoriums retrieved successfully", resp, nil)
}

func (ctrl *controller) UpdateAuditorium(c *gin.Context) {
	id, err := uuid.Parse(c.Param("auditoriumId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid auditorium ID", nil, err.Error())
		return
	}

	var req UpdateAuditoriumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	auditorium, err := ctrl.service.UpdateAuditorium(c.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrAuditoriumNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Auditorium updated successfully", auditorium.ToResponse(), nil)
}

func (ctrl *controller) ResizeAuditorium(c *gin.Context) {
	id, err := uuid.Parse(c.Param("auditoriumId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid auditorium ID", nil, err.Error())
		return
	}

	var req ResizeAuditoriumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	auditorium, err := ctrl.service.ResizeAuditorium(c.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrAuditoriumNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Auditorium resized successfully", auditorium.ToResponse(), nil)
}

func (ctrl *controller) DeleteAuditorium(c *gin.Context) {
	id, err := uuid.Parse(c.Param("auditoriumId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid auditorium ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteAuditorium(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrAuditoriumNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Auditorium deleted successfully", nil, nil)
}
