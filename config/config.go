package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/productionplan/api/productionplan"
	"github.com/kilianp07/productionplan/core/dispatch"
	"github.com/kilianp07/productionplan/core/metrics"
	"github.com/kilianp07/productionplan/infra/mqtt"
)

// Config is the root configuration of the service.
type Config struct {
	Server   productionplan.Config `json:"server"`
	Dispatch dispatch.Config       `json:"dispatch"`
	Metrics  metrics.Config        `json:"metrics"`
	Logging  LoggingConfig         `json:"logging"`
	Sentry   SentryConfig          `json:"sentry"`
	MQTT     mqtt.Config           `json:"mqtt"`
}

// Load reads a YAML or JSON file, applies K_ prefixed environment overrides
// (K_SERVER__ADDRESS sets server.address) then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every section defaulted. It is used
// when the CLI runs without a config file.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Dispatch.SetDefaults()
	c.Logging.SetDefaults()
	c.Sentry.SetDefaults()
	c.MQTT.SetDefaults()
}

func (c Config) Validate() error {
	if err := c.Dispatch.Validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Sentry.Validate(); err != nil {
		return fmt.Errorf("sentry: %w", err)
	}
	if err := c.MQTT.Validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	for i, s := range c.Metrics.Sinks {
		if s.Type == "" {
			return fmt.Errorf("metrics: sink %d has no type", i)
		}
	}
	return nil
}
