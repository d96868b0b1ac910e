// FILE: database/repository/practitioner/indexes.go
package practitionerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the necessary indexes on the practitioners collection.
func (r *MongoPractitionerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on practitioner ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for vertical + status (search filter query pattern)
		{
			Keys:    bson.D{{Key: "vertical", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("vertical_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create practitioner indexes: %w", err)
	}
	return nil
}
