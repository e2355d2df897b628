package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleSpecs is the embedded spec sheet shown on a listing's detail page.
type VehicleSpecs struct {
	Transmission string `json:"transmission" bson:"transmission" validate:"required"`
	Fuel         string `json:"fuel" bson:"fuel" validate:"required"`
	Power        string `json:"power,omitempty" bson:"power,omitempty"`
	Seats        int    `json:"seats" bson:"seats"`
	Consumption  string `json:"consumption" bson:"consumption" validate:"required"`
	Luggage      string `json:"luggage,omitempty" bson:"luggage,omitempty"`
}

// Vehicle is a rental catalog listing. Price is a display string, not a
// numeric amount; the front-ends render it verbatim (e.g. "89€/day").
type Vehicle struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Image       string             `json:"image" bson:"image" validate:"required"`
	Gallery     []string           `json:"gallery" bson:"gallery"`
	Price       string             `json:"price" bson:"price" validate:"required"`
	Features    []string           `json:"features" bson:"features"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Rating      float64            `json:"rating" bson:"rating"`
	IsPopular   bool               `json:"isPopular" bson:"isPopular"`
	Specs       VehicleSpecs       `json:"specs" bson:"specs" validate:"required"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VehicleUpdateRequest carries a partial update. Nil fields are left
// untouched; non-nil fields replace the stored value wholesale (specs is
// replaced as a unit, not merged).
type VehicleUpdateRequest struct {
	Name        *string       `json:"name" validate:"omitnil,min=1"`
	Image       *string       `json:"image" validate:"omitnil,min=1"`
	Gallery     *[]string     `json:"gallery"`
	Price       *string       `json:"price" validate:"omitnil,min=1"`
	Features    *[]string     `json:"features"`
	Description *string       `json:"description" validate:"omitnil,min=1"`
	Rating      *float64      `json:"rating"`
	IsPopular   *bool         `json:"isPopular"`
	Specs       *VehicleSpecs `json:"specs"`
}
