package schedule

import (
	"context"
	"time"

	practitionerRepo "medibook/database/repository/practitioner"
	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"
)

// BlockInput is the request to declare a new interval of bookable time.
type BlockInput struct {
	PractitionerID string    `json:"practitionerId"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Capacity       int       `json:"capacity,omitempty"` // 0 means "use the practitioner default"
	Recurring      bool      `json:"recurring,omitempty"`
	SeriesID       string    `json:"seriesId,omitempty"`
}

// BookingInput is the request to record an appointment or hold.
type BookingInput struct {
	PractitionerID string    `json:"practitionerId"`
	MemberID       string    `json:"memberId,omitempty"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Status         string    `json:"status,omitempty"` // defaults to active
}

// ScheduleService manages the schedule data the availability search reads.
type ScheduleService interface {
	// CreateBlock validates and persists a schedule block.
	CreateBlock(ctx context.Context, input BlockInput) (*models.ScheduleBlock, error)
	// CreateBooking validates and persists a booked interval.
	CreateBooking(ctx context.Context, input BookingInput) (*models.BookedInterval, error)
}

// DefaultScheduleService is the concrete implementation.
type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Roster practitionerRepo.PractitionerRepository
}
