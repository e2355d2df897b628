package models

import (
	"time"

	"rentwheels/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusInProgress ReservationStatus = "in-progress"
	ReservationStatusCompleted  ReservationStatus = "completed"
)

// Reservation tracks a booking against a catalog listing. VehicleID is not
// checked against the vehicles collection, and VehicleName is a denormalized
// copy taken at booking time, so both may drift if the listing changes or is
// deleted. Start/end ordering is not checked either.
type Reservation struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID       primitive.ObjectID `json:"vehicleId" bson:"vehicleId" validate:"required"`
	VehicleName     string             `json:"vehicleName" bson:"vehicleName" validate:"required"`
	StartDate       utils.Datetime     `json:"startDate" bson:"startDate" validate:"required"`
	EndDate         utils.Datetime     `json:"endDate" bson:"endDate" validate:"required"`
	LicenseNumber   string             `json:"licenseNumber" bson:"licenseNumber" validate:"required"`
	PickupLocation  string             `json:"pickupLocation" bson:"pickupLocation" validate:"required"`
	DropoffLocation string             `json:"dropoffLocation" bson:"dropoffLocation" validate:"required"`
	Status          ReservationStatus  `json:"status" bson:"status" validate:"omitempty,oneof=pending in-progress completed"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// ReservationUpdateRequest carries a partial update. Status may move between
// the three values in any order; createdAt is never touched.
type ReservationUpdateRequest struct {
	VehicleID       *primitive.ObjectID `json:"vehicleId"`
	VehicleName     *string             `json:"vehicleName" validate:"omitnil,min=1"`
	StartDate       *utils.Datetime     `json:"startDate"`
	EndDate         *utils.Datetime     `json:"endDate"`
	LicenseNumber   *string             `json:"licenseNumber" validate:"omitnil,min=1"`
	PickupLocation  *string             `json:"pickupLocation" validate:"omitnil,min=1"`
	DropoffLocation *string             `json:"dropoffLocation" validate:"omitnil,min=1"`
	Status          *ReservationStatus  `json:"status" validate:"omitnil,oneof=pending in-progress completed"`
}
