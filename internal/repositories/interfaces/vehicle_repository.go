package interfaces

import (
	"context"

	"rentwheels/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]*models.Vehicle, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Update(ctx context.Context, id primitive.ObjectID, req *models.VehicleUpdateRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
