package config

import (
	"strings"
	"time"
)

// BackendConfig locates the board game REST backend.
type BackendConfig struct {
	// APIURL is the root of the /api resources.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8080/api"`
	// AccountAPIURL is the root of the /UserAccount resources. Empty derives it
	// from APIURL without the trailing /api.
	AccountAPIURL string        `env:"ACCOUNT_API_URL"`
	Timeout       time.Duration `env:"API_TIMEOUT"     envDefault:"10s"`
}

// Sanitize trims URLs and enforces a positive timeout.
func (b *BackendConfig) Sanitize() {
	b.APIURL = strings.TrimRight(strings.TrimSpace(b.APIURL), "/")
	b.AccountAPIURL = strings.TrimRight(strings.TrimSpace(b.AccountAPIURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
}
