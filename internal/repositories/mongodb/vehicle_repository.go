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

type vehicleRepository struct {
	collection *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection(utils.CollectionVehicles),
	}
}

// List returns all vehicles, newest-created first. Records sharing a
// creation timestamp may come back in either order.
func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []*models.Vehicle{}
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, cursor.Err()
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// Create validates the vehicle, applies catalog defaults and inserts it.
// Field validation lives here rather than in the storage schema so the
// contract holds regardless of the backend.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	applyVehicleDefaults(vehicle)

	if errs := validators.ValidateVehicle(vehicle); len(errs) > 0 {
		return errs
	}

	vehicle.ID = primitive.NewObjectID()
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// Update applies the provided fields and returns the post-update record.
func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.VehicleUpdateRequest) (*models.Vehicle, error) {
	if errs := validators.ValidateVehicleUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	update := vehicleUpdateDocument(req)
	update["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var vehicle models.Vehicle
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.ErrNotFound
	}

	return nil
}

// applyVehicleDefaults fills the catalog defaults for fields the client left
// unset. A zero value counts as unset.
func applyVehicleDefaults(vehicle *models.Vehicle) {
	if vehicle.Rating == 0 {
		vehicle.Rating = utils.DefaultVehicleRating
	}
	if vehicle.Specs.Seats == 0 {
		vehicle.Specs.Seats = utils.DefaultVehicleSeats
	}
	if vehicle.Gallery == nil {
		vehicle.Gallery = []string{}
	}
	if vehicle.Features == nil {
		vehicle.Features = []string{}
	}
}

// vehicleUpdateDocument builds the $set document from the fields present in
// the request. createdAt is never part of it.
func vehicleUpdateDocument(req *models.VehicleUpdateRequest) bson.M {
	update := bson.M{}

	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Image != nil {
		update["image"] = *req.Image
	}
	if req.Gallery != nil {
		update["gallery"] = *req.Gallery
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Features != nil {
		update["features"] = *req.Features
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.IsPopular != nil {
		update["isPopular"] = *req.IsPopular
	}
	if req.Specs != nil {
		update["specs"] = *req.Specs
	}

	return update
}
