package availability

import (
	"context"
	"fmt"

	"medibook/models"
)

// fetchSchedules performs the single batched read of the computation: roster
// entries, schedule blocks, and active bookings overlapping the expanded UTC
// window, grouped per practitioner. Every requested practitioner appears in
// the result, including those with zero blocks and those missing from the
// roster (returned ineligible, with a zero minimum duration).
func (s *DefaultAvailabilityService) fetchSchedules(ctx context.Context, practitionerIDs []string, window models.FetchWindow) ([]models.PractitionerSchedule, error) {
	entries, err := s.Roster.RosterEntries(ctx, practitionerIDs)
	if err != nil {
		return nil, fmt.Errorf("roster lookup failed: %w", err)
	}

	blocks, err := s.Schedule.GetScheduleBlocks(ctx, practitionerIDs, window)
	if err != nil {
		return nil, fmt.Errorf("schedule block fetch failed: %w", err)
	}

	bookings, err := s.Schedule.GetBookedIntervals(ctx, practitionerIDs, window)
	if err != nil {
		return nil, fmt.Errorf("booked interval fetch failed: %w", err)
	}

	blocksByID := make(map[string][]models.ScheduleBlock, len(practitionerIDs))
	for _, block := range blocks {
		blocksByID[block.PractitionerID] = append(blocksByID[block.PractitionerID], block)
	}
	bookingsByID := make(map[string][]models.BookedInterval, len(practitionerIDs))
	for _, booking := range bookings {
		bookingsByID[booking.PractitionerID] = append(bookingsByID[booking.PractitionerID], booking)
	}

	schedules := make([]models.PractitionerSchedule, 0, len(practitionerIDs))
	for _, id := range practitionerIDs {
		entry := entries[id]
		schedules = append(schedules, models.PractitionerSchedule{
			PractitionerID:  id,
			Blocks:          blocksByID[id],
			Bookings:        bookingsByID[id],
			Capacity:        entry.Capacity,
			MinimumDuration: entry.MinimumDuration,
		})
	}
	return schedules, nil
}
