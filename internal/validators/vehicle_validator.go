package validators

import (
	"rentwheels/internal/models"
)

// ValidateVehicle checks a vehicle's field contract before it is persisted.
func ValidateVehicle(vehicle *models.Vehicle) ValidationErrors {
	return ValidateStruct(vehicle)
}

// ValidateVehicleUpdate checks only the fields present in a partial update;
// a provided field must satisfy the same rules as on create.
func ValidateVehicleUpdate(req *models.VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
