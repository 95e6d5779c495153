package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: board game REST backend
//   - http.go: HTTP server configuration
//   - observability.go: logging
//   - storage.go: session storage, Redis and cache configuration
type AppConfig struct {
	// IsDev controls development mode behavior (templates and static files read from disk).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	HTTP    HTTPConfig
	Backend BackendConfig `envPrefix:"BOARDGAME_"`
	Session SessionConfig `envPrefix:"SESSION_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Cache   CacheConfig   `envPrefix:"CACHE_"`
	Logging LoggingConfig `envPrefix:"LOG_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.Cache.Sanitize()
	c.Logging.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// NeedsRedis reports whether any enabled component uses the Redis connection.
func (c *AppConfig) NeedsRedis() bool {
	return c.Session.Store == StoreRedis || (c.Cache.Enabled && c.Cache.Store == StoreRedis)
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
