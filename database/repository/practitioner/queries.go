package practitionerRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByVertical returns active practitioners whose vertical matches. Paused and
// offboarded practitioners never surface in search.
func (r *MongoPractitionerRepo) GetByVertical(ctx context.Context, vertical string) ([]models.Practitioner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vertical": vertical, "status": "active"})
	if err != nil {
		return nil, fmt.Errorf("failed to query vertical %s: %w", vertical, err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, fmt.Errorf("failed to decode practitioners for vertical %s: %w", vertical, err)
	}
	return practitioners, nil
}
