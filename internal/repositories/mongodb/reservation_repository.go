package mongodb

import (
	"context"
	"fmt"
	"time"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories/interfaces"
	"rentwheels/internal/utils"
	"rentwheels/internal/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) interfaces.ReservationRepository {
	return &reservationRepository{
		collection: db.Collection(utils.CollectionReservations),
	}
}

func (r *reservationRepository) List(ctx context.Context) ([]*models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := []*models.Reservation{}
	for cursor.Next(ctx) {
		var reservation models.Reservation
		if err := cursor.Decode(&reservation); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, cursor.Err()
}

func (r *reservationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

// Create validates the reservation and inserts it. The vehicleId is taken
// as given and is not checked against the vehicles collection.
func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if reservation.Status == "" {
		reservation.Status = models.ReservationStatusPending
	}

	if errs := validators.ValidateReservation(reservation); len(errs) > 0 {
		return errs
	}

	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// Update applies the provided fields and returns the post-update record.
// createdAt is immutable; an empty update returns the record unchanged.
func (r *reservationRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.ReservationUpdateRequest) (*models.Reservation, error) {
	if errs := validators.ValidateReservationUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	update := reservationUpdateDocument(req)
	if len(update) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var reservation models.Reservation
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.ErrNotFound
	}

	return nil
}

func reservationUpdateDocument(req *models.ReservationUpdateRequest) bson.M {
	update := bson.M{}

	if req.VehicleID != nil {
		update["vehicleId"] = *req.VehicleID
	}
	if req.VehicleName != nil {
		update["vehicleName"] = *req.VehicleName
	}
	if req.StartDate != nil {
		update["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		update["endDate"] = *req.EndDate
	}
	if req.LicenseNumber != nil {
		update["licenseNumber"] = *req.LicenseNumber
	}
	if req.PickupLocation != nil {
		update["pickupLocation"] = *req.PickupLocation
	}
	if req.DropoffLocation != nil {
		update["dropoffLocation"] = *req.DropoffLocation
	}
	if req.Status != nil {
		update["status"] = *req.Status
	}

	return update
}
