// FILE: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the necessary indexes on both schedule collections.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	blockIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for the window-overlap fetch (primary query pattern)
		{
			Keys:    bson.D{{Key: "practitionerId", Value: 1}, {Key: "startsAt", Value: 1}, {Key: "endsAt", Value: 1}},
			Options: options.Index().SetName("practitioner_window_idx"),
		},
	}
	if _, err := r.blockColl.Indexes().CreateMany(ctx, blockIndexes); err != nil {
		return fmt.Errorf("failed to create schedule block indexes: %w", err)
	}

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "practitionerId", Value: 1}, {Key: "status", Value: 1}, {Key: "startsAt", Value: 1}},
			Options: options.Index().SetName("practitioner_status_window_idx"),
		},
	}
	if _, err := r.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booked interval indexes: %w", err)
	}
	return nil
}
