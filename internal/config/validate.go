package config

import (
	"fmt"
	"net/url"
	"slices"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	if err := c.Relay.validate(); err != nil {
		return fmt.Errorf("relay: %w", err)
	}

	if u, err := url.Parse(c.Feed.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("feed.url must be an absolute URL (got %q)", c.Feed.URL)
	}

	return nil
}

func (e *EventsConfig) validate() error {
	if e.AckKey == "" {
		return fmt.Errorf("ack_key is required")
	}
	if e.MaxInFlight <= 0 {
		return fmt.Errorf("max_in_flight must be > 0 (got %d)", e.MaxInFlight)
	}
	if e.SyncBatchSize <= 0 {
		return fmt.Errorf("sync_batch_size must be > 0 (got %d)", e.SyncBatchSize)
	}
	if e.SyncHoldBack < 0 {
		return fmt.Errorf("sync_hold_back must be >= 0 (got %s)", e.SyncHoldBack)
	}
	return nil
}

func (r *RelayConfig) validate() error {
	if !slices.Contains([]string{RelayNone, RelayRedis, RelayAzQueue}, r.Driver) {
		return fmt.Errorf("unknown driver %q", r.Driver)
	}
	if r.Driver == RelayAzQueue && r.ConnectionString == "" {
		return fmt.Errorf("connection_string is required for the azqueue driver")
	}
	if r.Driver != RelayNone && r.Target == "" {
		return fmt.Errorf("target is required")
	}
	return nil
}
