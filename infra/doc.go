// Package infra holds the adapters behind the core ports: zerolog logging,
// Prometheus and InfluxDB metrics sinks, Sentry monitoring and the MQTT plan
// publisher. Core packages never import infra.
package infra
