package utils

import (
	"context"
	"sync"
	"time"

	"medibook/database"
)

// HealthStatus is the latest snapshot of the service's external dependencies:
// the roster/schedule database plus the two redis caches (availability
// responses and auth token hashes).
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	CacheRedis bool      `json:"cacheRedis"`
	AuthRedis  bool      `json:"authRedis"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CheckDependencies pings Mongo and both redis caches once and stores the
// snapshot served by /health. Uninitialized clients report unhealthy.
func CheckDependencies(ctx context.Context) HealthStatus {
	snapshot := HealthStatus{CheckedAt: time.Now()}
	if database.MongoClient != nil {
		snapshot.Mongo = database.MongoClient.Ping(ctx, nil) == nil
	}
	if CacheClient != nil {
		snapshot.CacheRedis = CacheClient.Ping(ctx).Err() == nil
	}
	if AuthCacheClient != nil {
		snapshot.AuthRedis = AuthCacheClient.Ping(ctx).Err() == nil
	}

	healthMu.Lock()
	currentHealth = snapshot
	healthMu.Unlock()
	return snapshot
}

// StartHealthMonitor re-checks the dependencies on the configured interval. It
// runs one check immediately so /health serves real data before the first tick.
func StartHealthMonitor(interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	go func() {
		ctx := context.Background()
		CheckDependencies(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			CheckDependencies(ctx)
		}
	}()
}
