// Package publish defines how computed production plans leave the service.
// The MQTT implementation lives in infra/mqtt.
package publish
