package metrics

import "github.com/kilianp07/productionplan/core/factory"

// Config lists the sinks every plan is recorded on.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
}

// Build creates the configured sink.
func (c Config) Build() (MetricsSink, error) {
	return NewMetricsSink(c.Sinks)
}
