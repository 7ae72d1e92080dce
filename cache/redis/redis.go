// Package redis provides a credential cache backed by Redis, for
// deployments where validated profiles should be shared across processes.
//
// Entries are stored as JSON under a configurable key prefix. Staleness
// stays a logical check in the engine; the optional Expiry here is a
// capacity policy only and must not be shorter than the engine's TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/authkit/cache"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/observability"
)

// Config holds connection and keying settings for the Redis-backed store.
type Config struct {
	// Addr is the Redis server address (host:port).
	Addr string `mapstructure:"addr"`

	// Password is the Redis server password.
	Password string `mapstructure:"password"`

	// DB is the Redis database number.
	DB int `mapstructure:"db"`

	// KeyPrefix namespaces cache keys (default: "credential").
	KeyPrefix string `mapstructure:"key_prefix"`

	// Expiry, if non-zero, lets Redis drop entries that have not been
	// rewritten for this long. Keep it at or above the engine TTL so
	// eviction never races the logical staleness check.
	Expiry time.Duration `mapstructure:"expiry"`

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.KeyPrefix == "" {
		c.KeyPrefix = "credential"
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 5 * time.Second
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("redis cache: addr is required")
	}
	return nil
}

// Store is a cache.Store backed by Redis.
type Store struct {
	rdb *goredis.Client
	cfg Config
	log *logger.Logger
}

// New creates a Redis-backed credential store.
func New(cfg Config, log *logger.Logger) (*Store, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault("authkit")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	log.Debug("credential cache connected", map[string]interface{}{
		"addr":   cfg.Addr,
		"db":     cfg.DB,
		"prefix": cfg.KeyPrefix,
	})

	return &Store{rdb: rdb, cfg: cfg, log: log.WithComponent("cache.redis")}, nil
}

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis cache ping: %w", err)
	}
	return nil
}

// CheckHealth implements observability.HealthChecker.
func (s *Store) CheckHealth(ctx context.Context) observability.Health {
	h := observability.Health{
		Name:    "cache.redis",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"addr": s.cfg.Addr},
	}
	if err := s.Ping(ctx); err != nil {
		h.Status = observability.HealthStatusDown
		h.Message = err.Error()
	}
	return h
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) key(token string) string {
	return s.cfg.KeyPrefix + ":" + token
}

// Lookup implements cache.Store. Missing keys are a miss, not an error.
func (s *Store) Lookup(ctx context.Context, token string) (*cache.Entry, error) {
	raw, err := s.rdb.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis cache lookup: %w", err)
	}

	var e cache.Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("redis cache unmarshal: %w", err)
	}
	return &e, nil
}

// Save implements cache.Store, overwriting any previous entry.
func (s *Store) Save(ctx context.Context, token string, entry cache.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("redis cache marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(token), string(data), s.cfg.Expiry).Err(); err != nil {
		return fmt.Errorf("redis cache save: %w", err)
	}
	return nil
}

var _ cache.Store = (*Store)(nil)
