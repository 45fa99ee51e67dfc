package crossref

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheDirName = ".orcid2vivo/cache"
	cacheVersion = "v1"

	// DefaultCacheTTL bounds how long a cached response is trusted.
	DefaultCacheTTL = 24 * time.Hour
)

// CacheEntry is a cached response: the HTTP status and, for hits, the body.
type CacheEntry struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Cache stores lookup responses keyed by DOI. Only 200 and 404 responses
// are stored.
type Cache interface {
	Get(ctx context.Context, doi string) (CacheEntry, bool, error)
	Set(ctx context.Context, doi string, entry CacheEntry) error
}

func cacheKey(doi string) string {
	hash := md5.Sum([]byte(doi))
	return hex.EncodeToString(hash[:])
}

// DefaultCacheDir returns the per-user cache directory for CrossRef
// responses.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(home, cacheDirName, "crossref", cacheVersion), nil
}

// FileCache keeps one JSON file per DOI in Dir.
type FileCache struct {
	Dir string
	TTL time.Duration
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &FileCache{Dir: dir, TTL: DefaultCacheTTL}, nil
}

func (c *FileCache) path(doi string) string {
	return filepath.Join(c.Dir, cacheKey(doi)+".json")
}

// Get returns the cached entry for doi. Expired and unreadable entries are
// misses.
func (c *FileCache) Get(_ context.Context, doi string) (CacheEntry, bool, error) {
	cachePath := c.path(doi)

	info, err := os.Stat(cachePath)
	if err != nil {
		return CacheEntry{}, false, nil
	}
	if c.TTL > 0 && time.Since(info.ModTime()) > c.TTL {
		os.Remove(cachePath)
		return CacheEntry{}, false, nil
	}

	fileData, err := os.ReadFile(cachePath)
	if err != nil {
		return CacheEntry{}, false, nil
	}

	var entry CacheEntry
	if err := json.Unmarshal(fileData, &entry); err != nil || entry.Status == 0 {
		return CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set writes entry for doi.
func (c *FileCache) Set(_ context.Context, doi string, entry CacheEntry) error {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := os.WriteFile(c.path(doi), encoded, 0644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			os.Remove(filepath.Join(c.Dir, entry.Name()))
		}
	}
	return nil
}

// Redis key prefix for cached CrossRef responses
const redisKeyPrefix = "orcid2vivo:crossref:" + cacheVersion + ":"

// RedisCache shares cached responses between runs and hosts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps client. A ttl of zero keeps entries until evicted.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached entry for doi.
func (c *RedisCache) Get(ctx context.Context, doi string) (CacheEntry, bool, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+cacheKey(doi)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CacheEntry{}, false, nil
	}
	if err != nil {
		return CacheEntry{}, false, fmt.Errorf("reading redis cache: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Status == 0 {
		return CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set stores entry for doi.
func (c *RedisCache) Set(ctx context.Context, doi string, entry CacheEntry) error {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+cacheKey(doi), encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing redis cache: %w", err)
	}
	return nil
}
