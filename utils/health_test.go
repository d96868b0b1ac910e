package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDependencies_UninitializedClientsReportUnhealthy(t *testing.T) {
	snapshot := CheckDependencies(context.Background())

	assert.False(t, snapshot.Mongo)
	assert.False(t, snapshot.CacheRedis)
	assert.False(t, snapshot.AuthRedis)
	assert.False(t, snapshot.CheckedAt.IsZero())

	assert.Equal(t, snapshot, GetHealthStatus(), "the snapshot is stored for /health")
}
