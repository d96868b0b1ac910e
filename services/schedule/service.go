package schedule

import (
	"context"
	"fmt"

	"medibook/models"

	"github.com/google/uuid"
)

func (s *DefaultScheduleService) CreateBlock(ctx context.Context, input BlockInput) (*models.ScheduleBlock, error) {
	if input.PractitionerID == "" {
		return nil, InvalidInputError{Message: "practitionerId is required"}
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, InvalidInputError{Message: "endsAt must be after startsAt"}
	}
	if input.Capacity < 0 {
		return nil, InvalidInputError{Message: "capacity cannot be negative"}
	}
	if err := s.requireKnownPractitioner(ctx, input.PractitionerID); err != nil {
		return nil, err
	}

	block := &models.ScheduleBlock{
		ID:             uuid.New().String(),
		PractitionerID: input.PractitionerID,
		StartsAt:       input.StartsAt.UTC(),
		EndsAt:         input.EndsAt.UTC(),
		Capacity:       input.Capacity,
		Recurring:      input.Recurring,
		SeriesID:       input.SeriesID,
	}
	if err := s.Repo.CreateScheduleBlock(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to persist schedule block: %w", err)
	}
	return block, nil
}

func (s *DefaultScheduleService) CreateBooking(ctx context.Context, input BookingInput) (*models.BookedInterval, error) {
	if input.PractitionerID == "" {
		return nil, InvalidInputError{Message: "practitionerId is required"}
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, InvalidInputError{Message: "endsAt must be after startsAt"}
	}

	status := input.Status
	if status == "" {
		status = models.BookingStatusActive
	}
	if status != models.BookingStatusActive && status != models.BookingStatusCancelled {
		return nil, InvalidInputError{Message: fmt.Sprintf("unknown booking status %q", input.Status)}
	}
	if err := s.requireKnownPractitioner(ctx, input.PractitionerID); err != nil {
		return nil, err
	}

	booking := &models.BookedInterval{
		ID:             uuid.New().String(),
		PractitionerID: input.PractitionerID,
		MemberID:       input.MemberID,
		StartsAt:       input.StartsAt.UTC(),
		EndsAt:         input.EndsAt.UTC(),
		Status:         status,
	}
	if err := s.Repo.CreateBookedInterval(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booked interval: %w", err)
	}
	return booking, nil
}

// requireKnownPractitioner rejects writes against IDs that are not on the
// roster; orphaned schedule rows would never surface in any search.
func (s *DefaultScheduleService) requireKnownPractitioner(ctx context.Context, id string) error {
	p, err := s.Roster.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("roster lookup failed: %w", err)
	}
	if p == nil {
		return InvalidInputError{Message: fmt.Sprintf("unknown practitioner %q", id)}
	}
	return nil
}
