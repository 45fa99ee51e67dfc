package containers

import (
	"context"
	"os"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresDSN returns a connection string for a PostgreSQL database that
// lives as long as t.
func PostgresDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("CROSSWALK_TEST_DATABASE_URL"); dsn != "" {
		return dsn
	}
	skipWithoutRuntime(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, PostgresImage,
		tcpostgres.WithDatabase("orcid2vivo"),
		tcpostgres.WithUsername("orcid2vivo"),
		tcpostgres.WithPassword("orcid2vivo"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminateOnCleanup(t, container)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	return dsn
}
