// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// CacheStrategy selects the backing store for the credential cache.
type CacheStrategy string

const (
	// CacheRemoteOnly keeps nothing on device; every start requires the
	// backend to be reachable.
	CacheRemoteOnly CacheStrategy = "remote-only"
	// CacheEncrypted persists the session in the encrypted sqlite store for
	// offline restoration.
	CacheEncrypted CacheStrategy = "encrypted-cache"
)

// Config holds runtime settings for the FloodWatch client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - DataDir: subdirectory (of the working directory) holding the sqlite
//     store and device key material.
//   - CacheStrategy: remote-only or encrypted-cache.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DataDir             string
	CacheStrategy       CacheStrategy
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = "floodwatch"
	c.CacheStrategy = CacheEncrypted
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
