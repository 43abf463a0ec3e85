package config

import "fmt"

// SentryConfig defines settings for Sentry error monitoring. Monitoring is
// disabled when DSN is empty.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
	// FlushTimeoutMS bounds the wait for pending events on shutdown.
	FlushTimeoutMS int `json:"flush_timeout_ms"`
}

func (c *SentryConfig) SetDefaults() {
	if c.Environment == "" {
		c.Environment = "production"
	}
	if c.FlushTimeoutMS <= 0 {
		c.FlushTimeoutMS = 2000
	}
}

func (c SentryConfig) Validate() error {
	if c.TracesSampleRate < 0 || c.TracesSampleRate > 1 {
		return fmt.Errorf("traces_sample_rate must be within [0,1], got %v", c.TracesSampleRate)
	}
	return nil
}
