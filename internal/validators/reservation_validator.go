package validators

import (
	"rentwheels/internal/models"
)

// ValidateReservation checks a reservation's field contract before it is
// persisted. The referenced vehicle is deliberately not looked up:
// reservations keep their own denormalized vehicleName and dangling
// vehicleIds are accepted. Start/end ordering is likewise not checked.
func ValidateReservation(reservation *models.Reservation) ValidationErrors {
	return ValidateStruct(reservation)
}

// ValidateReservationUpdate checks only the fields present in a partial
// update. Status may hold any of the three values regardless of the current
// one; transitions are unconstrained.
func ValidateReservationUpdate(req *models.ReservationUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
