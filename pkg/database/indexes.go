package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes both collections are listed by. Listing
// sorts on createdAt descending, so that is the only index either needs.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"vehicles", "reservations"} {
		index := mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		}
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return err
		}
	}

	return nil
}
