// Package dispatch computes production plans.
//
// NewMeritOrder ranks generating units by marginal cost, cheapest first, and
// Allocate fills a load over them in a single forward pass. When the share
// left for a unit is below its minimum output the unit runs at its minimum
// and the overshoot is taken back from the units committed before it, as
// selected by CorrectionMode. Export maps the plan to the response entries.
//
// Manager wraps these steps for the service boundary: it validates the
// payload, logs the plan, publishes it and records metrics and events.
package dispatch
