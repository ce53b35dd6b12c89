// Package cache stores computed frames and rendered artifacts.
//
// Layout generation is cheap but raster output (PNG, gradients at large
// sizes, Graphviz diagrams) is not, and the HTTP server renders the same
// handful of scenes over and over. The [Cache] interface abstracts the
// backing store so the CLI can use a local directory while servers share
// Redis or MongoDB:
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry under a directory
//   - [RedisCache]: github.com/redis/go-redis/v9
//   - [MongoCache]: go.mongodb.org/mongo-driver with a TTL index
//
// Keys are produced by a [Keyer] so every caller derives identical keys
// for identical inputs.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a hit, nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLs per entry type.
const (
	TTLFrame     = 7 * 24 * time.Hour
	TTLArtifact  = 7 * 24 * time.Hour
	TTLHierarchy = 30 * 24 * time.Hour
)
