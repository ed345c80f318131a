package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinely/internal/shared/utils/response"
)

type Controller interface {
	CheckAvailability(c *gin.Context)
	CheckAdjacency(c *gin.Context)
	Reserve(c *gin.Context)
	GetMyReservations(c *gin.Context)
	GetAllReservations(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseSeatIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (ctrl *controller) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	var projectionID *uuid.UUID
	if req.ProjectionID != nil {
		id, err := uuid.Parse(*req.ProjectionID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
			return
		}
		projectionID = &id
	}

	result, err := ctrl.service.CheckAvailability(c.Request.Context(), seatIDs, projectionID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, result.InfoMessage, result, nil)
}

func (ctrl *controller) CheckAdjacency(c *gin.Context) {
	var req CheckAdjacencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	result, err := ctrl.service.CheckAdjacency(c.Request.Context(), seatIDs)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	if result == nil {
		// Empty input produces no result; that is a caller error, not a pass.
		response.RespondJSON(c, "error", http.StatusBadRequest, "No seats provided", nil, nil)
		return
	}

	if !result.Succeeded {
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, result.InfoMessage, result, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, result.InfoMessage, result, nil)
}

func (ctrl *controller) Reserve(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	projectionID, err := uuid.Parse(req.ProjectionID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
		return
	}

	seatIDs, err := parseSeatIDs(req.SeatIDs)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	created, err := ctrl.service.Reserve(c.Request.Context(), projectionID, userID, seatIDs)
	if err != nil {
		var seatsTaken *SeatsTakenError
		if errors.As(err, &seatsTaken) {
			payload := SeatsTakenPayload{
				ErrorMessage:  seatsTaken.Message,
				SeatsTakenIDs: make([]string, 0, len(seatsTaken.SeatsTakenIDs)),
			}
			for _, id := range seatsTaken.SeatsTakenIDs {
				payload.SeatsTakenIDs = append(payload.SeatsTakenIDs, id.String())
			}
			response.RespondJSON(c, "error", http.StatusConflict, seatsTaken.Message, payload, nil)
			return
		}

		var paymentErr *PaymentError
		if errors.As(err, &paymentErr) {
			response.RespondJSON(c, "error", http.StatusPaymentRequired, paymentErr.Message, nil, nil)
			return
		}

		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	resp := make([]ReservationResponse, 0, len(created))
	for i := range created {
		resp = append(resp, created[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", resp, nil)
}

func (ctrl *controller) GetMyReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	reservations, err := ctrl.service.GetReservationsByUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	resp := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, reservations[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations retrieved successfully", resp, nil)
}

func (ctrl *controller) GetAllReservations(c *gin.Context) {
	if rawProjectionID := c.Query("projection_id"); rawProjectionID != "" {
		projectionID, err := uuid.Parse(rawProjectionID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid projection ID", nil, err.Error())
			return
		}

		reservations, err := ctrl.service.GetReservationsByProjection(c.Request.Context(), projectionID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
			return
		}
		respondReservationList(c, reservations)
		return
	}

	reservations, err := ctrl.service.GetAllReservations(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	respondReservationList(c, reservations)
}

func respondReservationList(c *gin.Context, reservations []Reservation) {
	resp := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, reservations[i].ToResponse())
	}
	response.RespondJSON(c, "success", http.StatusOK, "Reservations retrieved successfully", resp, nil)
}
