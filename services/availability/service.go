package availability

import (
	"context"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchAvailability validates the query, resolves the candidate practitioner
// set, performs the single batched fetch, and reduces the snapshot to one
// boolean per local calendar day. Any upstream failure aborts the whole
// request; there are no retries and no partial results.
func (s *DefaultAvailabilityService) SearchAvailability(ctx context.Context, query models.AvailabilityQuery) ([]models.DayAvailability, error) {
	logger := utils.GetLogger()
	requestID := uuid.New().String()

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	window, err := resolveWindow(query, now, s.Limits)
	if err != nil {
		return nil, err
	}

	candidates, err := s.resolveCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	// Every candidate filtered out is not an error: the member still gets a
	// full day list, all unavailable.
	if len(candidates) == 0 {
		return buildDayAvailabilities(window, nil), nil
	}

	key := cacheKey(query, window)
	if days := s.cachedDays(ctx, key); days != nil {
		logger.Debug("availability cache hit",
			zap.String("requestID", requestID),
			zap.Int("practitioners", len(candidates)))
		return days, nil
	}

	schedules, err := s.fetchSchedules(ctx, candidates, fetchWindow(window))
	if err != nil {
		logger.Error("availability fetch failed",
			zap.String("requestID", requestID),
			zap.Error(err))
		return nil, err
	}

	days := buildDayAvailabilities(window, schedules)
	s.storeDays(ctx, key, days)

	logger.Info("availability search computed",
		zap.String("requestID", requestID),
		zap.Int("practitioners", len(candidates)),
		zap.Int("days", len(days)))
	return days, nil
}

// resolveCandidates applies the optional vertical and prescribing filters.
// Practitioners failing a filter are excluded silently.
func (s *DefaultAvailabilityService) resolveCandidates(ctx context.Context, query models.AvailabilityQuery) ([]string, error) {
	candidates := query.PractitionerIDs

	var err error
	if query.ProviderType != "" {
		candidates, err = s.Roster.FilterByVertical(ctx, candidates, query.ProviderType)
		if err != nil {
			return nil, err
		}
	}
	if query.CanPrescribe != nil && *query.CanPrescribe {
		candidates, err = s.Roster.FilterPrescribers(ctx, candidates)
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}
