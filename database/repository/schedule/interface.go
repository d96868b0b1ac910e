package scheduleRepo

import (
	"context"

	"medibook/models"
)

// ScheduleRepository defines read access to schedule blocks and booked
// intervals. Fetches are pure reads; availability computation never writes.
type ScheduleRepository interface {
	// GetScheduleBlocks returns every block for the given practitioners that
	// overlaps [window.Start, window.End), including blocks that merely straddle
	// a window edge. Clipping is the reducer's job, not the fetcher's.
	GetScheduleBlocks(ctx context.Context, practitionerIDs []string, window models.FetchWindow) ([]models.ScheduleBlock, error)
	// GetBookedIntervals returns every active booking for the given
	// practitioners overlapping the window. Cancelled bookings are excluded;
	// they no longer consume capacity.
	GetBookedIntervals(ctx context.Context, practitionerIDs []string, window models.FetchWindow) ([]models.BookedInterval, error)
	// CreateScheduleBlock inserts a block (schedule management surface).
	CreateScheduleBlock(ctx context.Context, block *models.ScheduleBlock) error
	// CreateBookedInterval inserts a booking record.
	CreateBookedInterval(ctx context.Context, booking *models.BookedInterval) error
}
