package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	blockColl   *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	repo := &MongoScheduleRepo{
		blockColl:   database.Collection("schedule_blocks"),
		bookingColl: database.Collection("booked_intervals"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create schedule indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// overlapFilter matches documents whose [startsAt, endsAt) interval intersects
// the fetch window. startsAt < window.End AND endsAt > window.Start picks up
// blocks that straddle either edge, not only fully contained ones.
func overlapFilter(practitionerIDs []string, window models.FetchWindow) bson.M {
	return bson.M{
		"practitionerId": bson.M{"$in": practitionerIDs},
		"startsAt":       bson.M{"$lt": window.End},
		"endsAt":         bson.M{"$gt": window.Start},
	}
}

func (r *MongoScheduleRepo) GetScheduleBlocks(ctx context.Context, practitionerIDs []string, window models.FetchWindow) ([]models.ScheduleBlock, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.blockColl.Find(ctx, overlapFilter(practitionerIDs, window))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.ScheduleBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode schedule blocks: %w", err)
	}
	return blocks, nil
}

func (r *MongoScheduleRepo) GetBookedIntervals(ctx context.Context, practitionerIDs []string, window models.FetchWindow) ([]models.BookedInterval, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := overlapFilter(practitionerIDs, window)
	filter["status"] = models.BookingStatusActive

	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.BookedInterval
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode booked intervals: %w", err)
	}
	return bookings, nil
}

func (r *MongoScheduleRepo) CreateScheduleBlock(ctx context.Context, block *models.ScheduleBlock) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if !block.EndsAt.After(block.StartsAt) {
		return fmt.Errorf("schedule block %s must end after it starts", block.ID)
	}
	if _, err := r.blockColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to insert schedule block: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) CreateBookedInterval(ctx context.Context, booking *models.BookedInterval) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if !booking.EndsAt.After(booking.StartsAt) {
		return fmt.Errorf("booked interval %s must end after it starts", booking.ID)
	}
	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booked interval: %w", err)
	}
	return nil
}
