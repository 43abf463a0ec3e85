// Package events defines the planning events emitted on the event bus.
//
// Available event types:
//   - PlanEvent: a production plan was computed
//   - RejectEvent: a request was refused before dispatch
package events
