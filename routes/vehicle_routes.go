package routes

import (
	"rentwheels/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for the vehicle catalog
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
