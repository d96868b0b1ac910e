package availability

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// cacheKey derives a stable key from the resolved request. Practitioner IDs
// are sorted so two requests differing only in ID order share an entry, and the
// window is keyed by its local start date and day count rather than raw
// instants: the day list depends only on those, so default-window searches
// issued seconds apart (and warm-worker precomputations) all map to one entry.
func cacheKey(query models.AvailabilityQuery, window models.SearchWindow) string {
	ids := append([]string(nil), query.PractitionerIDs...)
	sort.Strings(ids)

	prescribe := ""
	if query.CanPrescribe != nil {
		prescribe = fmt.Sprintf("%t", *query.CanPrescribe)
	}

	raw := strings.Join([]string{
		strings.Join(ids, ","),
		query.MemberTimezone,
		localDayStart(window).Format(models.DayDateFormat),
		fmt.Sprintf("%d", window.Days),
		query.ProviderType,
		prescribe,
	}, "|")

	sum := sha256.Sum256([]byte(raw))
	return utils.AvailabilityCachePrefix + hex.EncodeToString(sum[:])
}

// cachedDays returns a previously computed response, or nil on a miss. Cache
// failures are treated as misses; the endpoint is advisory and recomputation
// is cheap.
func (s *DefaultAvailabilityService) cachedDays(ctx context.Context, key string) []models.DayAvailability {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var days []models.DayAvailability
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		utils.GetLogger().Warn("discarding malformed availability cache entry", zap.Error(err))
		return nil
	}
	return days
}

// storeDays caches a computed response with the configured short TTL.
func (s *DefaultAvailabilityService) storeDays(ctx context.Context, key string, days []models.DayAvailability) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability response", zap.Error(err))
	}
}
