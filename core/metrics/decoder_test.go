package metrics_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	metrics "github.com/kilianp07/productionplan/core/metrics"
	_ "github.com/kilianp07/productionplan/infra/metrics"
)

func TestConfigBuild_YAML(t *testing.T) {
	var cfg metrics.Config
	require.NoError(t, yaml.Unmarshal([]byte("sinks:\n  - type: nop\n  - type: nop\n"), &cfg))
	s, err := cfg.Build()
	require.NoError(t, err)
	assert.IsType(t, &metrics.MultiSink{}, s)
}

func TestConfigBuild_JSONErrors(t *testing.T) {
	tests := map[string]string{
		"unknown type":       `{"sinks":[{"type":"missing"}]}`,
		"influx no bucket":   `{"sinks":[{"type":"influx","conf":{"url":"http://127.0.0.1:1"}}]}`,
		"second sink broken": `{"sinks":[{"type":"nop"},{"type":"missing"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var cfg metrics.Config
			require.NoError(t, json.Unmarshal([]byte(data), &cfg))
			_, err := cfg.Build()
			assert.Error(t, err)
		})
	}
}
