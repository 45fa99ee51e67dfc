package containers

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// Redis returns a client for a Redis server. The client and any
// container are released when t finishes.
func Redis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	var opts *redis.Options
	if addr := os.Getenv("CROSSWALK_TEST_REDIS_ADDR"); addr != "" {
		opts = &redis.Options{Addr: addr}
	} else {
		skipWithoutRuntime(t)

		container, err := tcredis.Run(ctx, RedisImage)
		if err != nil {
			t.Fatalf("failed to start redis container: %v", err)
		}
		terminateOnCleanup(t, container)

		uri, err := container.ConnectionString(ctx)
		if err != nil {
			t.Fatalf("failed to get redis connection string: %v", err)
		}
		opts, err = redis.ParseURL(uri)
		if err != nil {
			t.Fatalf("failed to parse redis URL: %v", err)
		}
	}

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}
	return client
}
