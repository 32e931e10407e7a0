package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// XeroConfig carries everything the fetch client and sync engine need to talk
// to the remote API. It is built once in main and passed into constructors so
// cycles are testable with a mock configuration instead of ambient env reads.
type XeroConfig struct {
	BaseURL     string
	TenantID    string
	BearerToken string
	HTTPTimeout time.Duration

	// SyncInterval is the default timer period for every entity type.
	// Per-entity overrides come from XERO_SYNC_INTERVAL_<ENTITY>_SECONDS.
	SyncInterval time.Duration
}

func init() {
	godotenv.Load()
}

func LoadXeroConfig() XeroConfig {
	baseURL := strings.TrimSpace(os.Getenv("XERO_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.xero.com/api.xro/2.0"
	}

	return XeroConfig{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		TenantID:     strings.TrimSpace(os.Getenv("XERO_TENANT_ID")),
		BearerToken:  strings.TrimSpace(os.Getenv("XERO_BEARER_TOKEN")),
		HTTPTimeout:  time.Duration(intFromEnv("XERO_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		SyncInterval: time.Duration(intFromEnv("XERO_SYNC_INTERVAL_SECONDS", 30)) * time.Second,
	}
}

// EntityInterval resolves the timer period for one entity type, e.g.
// XERO_SYNC_INTERVAL_ACCOUNTS_SECONDS=2 restores the aggressive cadence the
// legacy deployment ran with.
func (c XeroConfig) EntityInterval(entity string) time.Duration {
	key := "XERO_SYNC_INTERVAL_" + strings.ToUpper(strings.TrimSpace(entity)) + "_SECONDS"
	if v := intFromEnv(key, 0); v > 0 {
		return time.Duration(v) * time.Second
	}
	return c.SyncInterval
}
