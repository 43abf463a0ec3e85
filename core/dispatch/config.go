package dispatch

import "time"

// Config defines dispatch-related settings.
type Config struct {
	// Correction is "headroom" (default) or "legacy".
	Correction       string `json:"correction" yaml:"correction"`
	PublishTimeoutMS int    `json:"publish_timeout_ms" yaml:"publish_timeout_ms"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Correction == "" {
		c.Correction = HeadroomCorrection.String()
	}
	if c.PublishTimeoutMS <= 0 {
		c.PublishTimeoutMS = 2000
	}
}

// Validate checks the correction mode.
func (c Config) Validate() error {
	_, err := ParseCorrectionMode(c.Correction)
	return err
}

// PublishTimeout returns the timeout applied to each plan publication.
func (c Config) PublishTimeout() time.Duration {
	return time.Duration(c.PublishTimeoutMS) * time.Millisecond
}
