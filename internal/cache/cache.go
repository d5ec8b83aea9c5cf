// Package cache provides byte caching for headline lookups, so repeated
// edits of the same claim-source URL do not re-scrape the page.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/factdesk/factdesk/internal/model"
)

// Cache is a byte store with per-entry TTLs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "factdesk:v1:" + hex.EncodeToString(hash[:])
}

// FromConfig builds the configured cache backend, or nil when caching is
// disabled.
func FromConfig(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Backend == "disk" && cfg.Dir != "" {
		return NewDiskCache(cfg.Dir, cfg.TTL)
	}
	return NewMemoryCache(cfg.TTL, 2*cfg.TTL)
}
