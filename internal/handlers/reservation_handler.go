package handlers

import (
	"errors"
	"net/http"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories/interfaces"
	"rentwheels/internal/utils"
	"rentwheels/internal/validators"
	"rentwheels/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationHandler struct {
	reservationRepo interfaces.ReservationRepository
	logger          *logger.Logger
}

func NewReservationHandler(reservationRepo interfaces.ReservationRepository, logger *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListReservations returns all reservations, newest first
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationRepo.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list reservations")
		utils.InternalErrorResponse(c, "Error fetching reservations", err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns a single reservation by id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Reservation")
		return
	}

	reservation, err := h.reservationRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Reservation")
			return
		}
		h.logger.WithError(err).Error("failed to get reservation")
		utils.InternalErrorResponse(c, "Error fetching reservation", err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CreateReservation stores a new reservation
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", err)
		return
	}

	if err := h.reservationRepo.Create(c.Request.Context(), &reservation); err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequestResponse(c, verrs.Error(), nil)
			return
		}
		h.logger.WithError(err).Error("failed to create reservation")
		utils.InternalErrorResponse(c, "Error creating reservation", err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation applies a partial update and returns the updated reservation
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Reservation")
		return
	}

	var update models.ReservationUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", err)
		return
	}

	reservation, err := h.reservationRepo.Update(c.Request.Context(), id, &update)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequestResponse(c, verrs.Error(), nil)
			return
		}
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Reservation")
			return
		}
		h.logger.WithError(err).Error("failed to update reservation")
		utils.InternalErrorResponse(c, "Error updating reservation", err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation removes a reservation by id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Reservation")
		return
	}

	if err := h.reservationRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Reservation")
			return
		}
		h.logger.WithError(err).Error("failed to delete reservation")
		utils.InternalErrorResponse(c, "Error deleting reservation", err)
		return
	}

	utils.MessageResponse(c, "Reservation deleted successfully")
}
