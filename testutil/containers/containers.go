// Package containers starts throwaway Redis and PostgreSQL services for
// integration tests. Tests are skipped when no container runtime is
// reachable. Setting CROSSWALK_TEST_REDIS_ADDR or
// CROSSWALK_TEST_DATABASE_URL points a test at an existing service instead.
package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

const (
	RedisImage    = "redis:7-alpine"
	PostgresImage = "postgres:16-alpine"
)

// skipWithoutRuntime skips t, or the short test run, when containers
// cannot be started.
func skipWithoutRuntime(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

func terminateOnCleanup(t *testing.T, c testcontainers.Container) {
	t.Helper()
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})
}
