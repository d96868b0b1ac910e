package practitionerRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPractitionerRepo implements PractitionerRepository using MongoDB.
type MongoPractitionerRepo struct {
	coll *mongo.Collection
}

// NewMongoPractitionerRepo creates a new instance of PractitionerRepository using MongoDB.
func NewMongoPractitionerRepo() PractitionerRepository {
	repo := &MongoPractitionerRepo{coll: database.Collection("practitioners")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create practitioner indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoPractitionerRepo) GetByID(ctx context.Context, id string) (*models.Practitioner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var practitioner models.Practitioner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&practitioner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioner %s: %w", id, err)
	}
	return &practitioner, nil
}

func (r *MongoPractitionerRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Practitioner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioners: %w", err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, fmt.Errorf("failed to decode practitioners: %w", err)
	}
	return practitioners, nil
}

func (r *MongoPractitionerRepo) Create(ctx context.Context, practitioner *models.Practitioner) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, practitioner); err != nil {
		return fmt.Errorf("failed to insert practitioner: %w", err)
	}
	return nil
}

func (r *MongoPractitionerRepo) Update(ctx context.Context, practitioner *models.Practitioner) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": practitioner.ID}, practitioner)
	if err != nil {
		return fmt.Errorf("failed to update practitioner %s: %w", practitioner.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("practitioner %s not found", practitioner.ID)
	}
	return nil
}

func (r *MongoPractitionerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete practitioner %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("practitioner %s not found", id)
	}
	return nil
}
