package config

import (
	"fmt"
	"strings"
	"time"
)

// StoreKind selects a storage backend.
type StoreKind string

const (
	// StoreMemory keeps values in process; they are lost on restart.
	StoreMemory StoreKind = "memory"
	// StoreRedis keeps values in Redis so several instances can share them.
	StoreRedis StoreKind = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreKind.
func (k *StoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "redis":
		*k = StoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid store: %q (valid options: memory, redis)", v)
	}
}

// SessionConfig controls tab-scoped session storage.
type SessionConfig struct {
	Store StoreKind `env:"STORE" envDefault:"memory"`
	// IdleTTL garbage-collects a tab scope after this long without writes.
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"12h"`
	// SweepInterval is how often the memory store evicts idle scopes.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	// KeyPrefix namespaces session hashes in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"bgsession:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Store == "" {
		s.Store = StoreMemory
	}
	if s.IdleTTL < 0 {
		s.IdleTTL = 0
	}
	if s.SweepInterval <= 0 {
		s.SweepInterval = 5 * time.Minute
	}
	if s.KeyPrefix = strings.TrimSpace(s.KeyPrefix); s.KeyPrefix == "" {
		s.KeyPrefix = "bgsession:"
	}
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig controls caching of the shared game catalog.
type CacheConfig struct {
	Enabled bool          `env:"ENABLED"     envDefault:"true"`
	Store   StoreKind     `env:"STORE"       envDefault:"memory"`
	TTL     time.Duration `env:"CATALOG_TTL" envDefault:"5m"`
	Prefix  string        `env:"KEY_PREFIX"  envDefault:"bgcache:"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.Store == "" {
		c.Store = StoreMemory
	}
	if c.TTL <= 0 {
		c.Enabled = false
	}
}
