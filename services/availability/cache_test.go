package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey_StableAcrossSeconds(t *testing.T) {
	query := validQuery()

	first, err := resolveWindow(query, mustParse("2025-03-01T12:00:00Z"), testLimits)
	require.NoError(t, err)
	second, err := resolveWindow(query, mustParse("2025-03-01T12:00:01Z"), testLimits)
	require.NoError(t, err)

	assert.Equal(t, cacheKey(query, first), cacheKey(query, second),
		"default-window searches moments apart must share a cache entry")
}

func TestCacheKey_ChangesAcrossLocalDays(t *testing.T) {
	query := validQuery()

	today, err := resolveWindow(query, mustParse("2025-03-01T12:00:00Z"), testLimits)
	require.NoError(t, err)
	tomorrow, err := resolveWindow(query, mustParse("2025-03-02T12:00:00Z"), testLimits)
	require.NoError(t, err)

	assert.NotEqual(t, cacheKey(query, today), cacheKey(query, tomorrow))
}

func TestCacheKey_PractitionerOrderInsensitive(t *testing.T) {
	now := mustParse("2025-03-01T12:00:00Z")

	forward := validQuery()
	forward.PractitionerIDs = []string{"prac-1", "prac-2"}
	reversed := validQuery()
	reversed.PractitionerIDs = []string{"prac-2", "prac-1"}

	window, err := resolveWindow(forward, now, testLimits)
	require.NoError(t, err)

	assert.Equal(t, cacheKey(forward, window), cacheKey(reversed, window))
}

func TestCacheKey_DistinguishesFilters(t *testing.T) {
	now := mustParse("2025-03-01T12:00:00Z")
	base := validQuery()

	window, err := resolveWindow(base, now, testLimits)
	require.NoError(t, err)
	baseKey := cacheKey(base, window)

	withVertical := base
	withVertical.ProviderType = "therapy"
	assert.NotEqual(t, baseKey, cacheKey(withVertical, window))

	prescribe := true
	withPrescribe := base
	withPrescribe.CanPrescribe = &prescribe
	assert.NotEqual(t, baseKey, cacheKey(withPrescribe, window))
}

func TestCacheKey_DistinguishesDayCount(t *testing.T) {
	base := validQuery()
	start := mustParse("2025-03-01T00:00:00Z")

	short := base
	shortEnd := start.Add(7 * 24 * time.Hour)
	short.StartTime = &start
	short.EndTime = &shortEnd
	shortWindow, err := resolveWindow(short, start, testLimits)
	require.NoError(t, err)

	long := base
	longEnd := start.Add(14 * 24 * time.Hour)
	long.StartTime = &start
	long.EndTime = &longEnd
	longWindow, err := resolveWindow(long, start, testLimits)
	require.NoError(t, err)

	assert.NotEqual(t, cacheKey(short, shortWindow), cacheKey(long, longWindow))
}

func TestCacheKey_SharedWithWarmedDefaultSearch(t *testing.T) {
	// The warm worker issues a default-window search; a member request for the
	// same practitioners later the same day must land on the warmed entry.
	query := validQuery()

	warmed, err := resolveWindow(query, mustParse("2025-03-01T00:05:00Z"), testLimits)
	require.NoError(t, err)
	member, err := resolveWindow(query, mustParse("2025-03-01T17:42:13Z"), testLimits)
	require.NoError(t, err)

	assert.Equal(t, cacheKey(query, warmed), cacheKey(query, member))
}
