package projections

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinely/internal/auditoriums"
	"cinely/internal/movies"
	"cinely/internal/shared/utils/response"
)

type Controller interface {
	CreateProjection(c *gin.Context)
	GetProjection(c *gin.Context)
	GetAllProjections(c *gin.Context)
	UpdateProjection(c *gin.Context)
	DeleteProjection(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateProjection(c *gin.Context) {
	var req CreateProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	projection, err := ctrl.service.CreateProjection(c.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, movies.ErrMovieNotFound) || errors.Is(err, auditoriums.ErrAuditoriumNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Projection created successfully", projection.ToResponse(), nil)
}

func (ctrl *controller) GetProjection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("projectionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
		return
	}

	projection, err := ctrl.service.GetProjectionByID(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrProjectionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Projection retrieved successfully", projection.ToResponse(), nil)
}

func (ctrl *controller) GetAllProjections(c *gin.Context) {
	var query ProjectionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	projections, err := ctrl.service.GetAllProjections(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	resp := make([]ProjectionResponse, 0, len(projections))
	for i := range projections {
		resp = append(resp, projections[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusOK, "Projections retrieved successfully", resp, nil)
}

func (ctrl *controller) UpdateProjection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("projectionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
		return
	}

	var req UpdateProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	projection, err := ctrl.service.UpdateProjection(c.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrProjectionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Projection updated successfully", projection.ToResponse(), nil)
}

func (ctrl *controller) DeleteProjection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("projectionId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteProjection(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrProjectionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Projection deleted successfully", nil, nil)
}
