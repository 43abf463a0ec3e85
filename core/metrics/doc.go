// Package metrics defines the sinks that record production plans. Sinks like
// PromSink and InfluxSink live in infra/metrics and register themselves in
// the factory under a type name; NewMetricsSink builds a MultiSink when more
// than one sink is configured.
package metrics
