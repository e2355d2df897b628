package routes

import (
	"rentwheels/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupReservationRoutes sets up routes for reservations
func SetupReservationRoutes(r *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationHandler.ListReservations)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.PUT("/:id", reservationHandler.UpdateReservation)
		reservations.DELETE("/:id", reservationHandler.DeleteReservation)
	}
}
