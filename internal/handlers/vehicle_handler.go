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

type VehicleHandler struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewVehicleHandler(vehicleRepo interfaces.VehicleRepository, logger *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// ListVehicles returns all vehicles, newest first
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleRepo.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list vehicles")
		utils.InternalErrorResponse(c, "Error fetching vehicles", err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle returns a single vehicle by id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// A malformed id cannot name any record
		utils.NotFoundResponse(c, "Vehicle")
		return
	}

	vehicle, err := h.vehicleRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		h.logger.WithError(err).Error("failed to get vehicle")
		utils.InternalErrorResponse(c, "Error fetching vehicle", err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle stores a new vehicle
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", err)
		return
	}

	if err := h.vehicleRepo.Create(c.Request.Context(), &vehicle); err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequestResponse(c, verrs.Error(), nil)
			return
		}
		h.logger.WithError(err).Error("failed to create vehicle")
		utils.InternalErrorResponse(c, "Error creating vehicle", err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle applies a partial update and returns the updated vehicle
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Vehicle")
		return
	}

	var update models.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", err)
		return
	}

	vehicle, err := h.vehicleRepo.Update(c.Request.Context(), id, &update)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequestResponse(c, verrs.Error(), nil)
			return
		}
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		h.logger.WithError(err).Error("failed to update vehicle")
		utils.InternalErrorResponse(c, "Error updating vehicle", err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle by id
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Vehicle")
		return
	}

	if err := h.vehicleRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFoundResponse(c, "Vehicle")
			return
		}
		h.logger.WithError(err).Error("failed to delete vehicle")
		utils.InternalErrorResponse(c, "Error deleting vehicle", err)
		return
	}

	utils.MessageResponse(c, "Vehicle deleted successfully")
}
