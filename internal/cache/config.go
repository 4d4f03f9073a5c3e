package cache

import "time"

// Config holds cache TTL configuration
type Config struct {
	PageTTL   time.Duration
	QRCodeTTL time.Duration
	Prefix    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		PageTTL:   5 * time.Minute, // keyed by catalog version, so staleness only matters for site config
		QRCodeTTL: 24 * time.Hour,
		Prefix:    "webinars:",
	}
}
