package availability

import (
	"context"
	"time"

	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"

	"github.com/go-redis/redis/v8"
)

// Service defines the availability search entrypoint.
type Service interface {
	// SearchAvailability computes one has-availability answer per local calendar
	// day of the resolved window, ORed across the candidate practitioners.
	SearchAvailability(ctx context.Context, query models.AvailabilityQuery) ([]models.DayAvailability, error)
}

// RosterEntry is the roster-derived input to the reducer for one practitioner.
type RosterEntry struct {
	Capacity        int
	MinimumDuration time.Duration // zero when the practitioner has no active product
}

// RosterLookup is the practitioner/vertical and capacity collaborator.
type RosterLookup interface {
	// FilterByVertical keeps only IDs whose practitioner matches the vertical.
	FilterByVertical(ctx context.Context, practitionerIDs []string, vertical string) ([]string, error)
	// FilterPrescribers keeps only IDs whose practitioner can prescribe.
	FilterPrescribers(ctx context.Context, practitionerIDs []string) ([]string, error)
	// RosterEntries returns capacity and minimum bookable duration per ID.
	// IDs absent from the roster are simply missing from the map.
	RosterEntries(ctx context.Context, practitionerIDs []string) (map[string]RosterEntry, error)
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct {
	Roster   RosterLookup
	Schedule scheduleRepo.ScheduleRepository
	Cache    *redis.Client
	Limits   WindowLimits
	CacheTTL time.Duration

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}
