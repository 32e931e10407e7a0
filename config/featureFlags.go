package config

import (
	"os"
	"strings"
)

// SyncTimersEnabled controls whether the periodic sync tasks start at all.
// The on-demand trigger endpoints keep working either way.
//
// Set via env:
// - XERO_SYNC_TIMERS=false
func SyncTimersEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("XERO_SYNC_TIMERS")))
	if v == "" {
		return true
	}
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// SyncEntityEnabled limits the periodic timers to a subset of entity types.
//
// Set via env:
// - XERO_SYNC_ENTITIES="accounts,invoices,contacts"
//
// Empty means every entity type is enabled. Names are case-insensitive.
func SyncEntityEnabled(entity string) bool {
	entity = strings.ToLower(strings.TrimSpace(entity))
	if entity == "" {
		return false
	}
	raw := os.Getenv("XERO_SYNC_ENTITIES")
	if strings.TrimSpace(raw) == "" {
		return true
	}
	for _, part := range strings.Split(raw, ",") {
		if strings.ToLower(strings.TrimSpace(part)) == entity {
			return true
		}
	}
	return false
}
