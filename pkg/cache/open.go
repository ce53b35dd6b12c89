package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend    string `toml:"backend"`
	Dir        string `toml:"dir"`
	RedisURL   string `toml:"redis_url"`
	MongoURI   string `toml:"mongo_uri"`
	MongoDB    string `toml:"mongo_database"`
	Collection string `toml:"mongo_collection"`
	Prefix     string `toml:"prefix"`
}

// Open builds the backend named by cfg.Backend. An empty backend is
// treated as "file".
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory not set")
		}
		return NewFileCache(cfg.Dir)
	case BackendRedis:
		return NewRedisCache(ctx, cfg.RedisURL)
	case BackendMongo:
		db := cfg.MongoDB
		if db == "" {
			db = "prismview"
		}
		return NewMongoCache(ctx, cfg.MongoURI, db, cfg.Collection)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// KeyerFor returns the keyer matching cfg, scoped when a prefix is set.
func KeyerFor(cfg Config) Keyer {
	if cfg.Prefix == "" {
		return NewDefaultKeyer()
	}
	return NewScopedKeyer(NewDefaultKeyer(), cfg.Prefix)
}
