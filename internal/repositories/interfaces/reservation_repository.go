package interfaces

import (
	"context"

	"rentwheels/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRepository interface {
	List(ctx context.Context) ([]*models.Reservation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	Create(ctx context.Context, reservation *models.Reservation) error
	Update(ctx context.Context, id primitive.ObjectID, req *models.ReservationUpdateRequest) (*models.Reservation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
