package events

import (
	"time"

	"github.com/kilianp07/productionplan/core/model"
)

// PlanEvent is published once a plan has been allocated and exported.
type PlanEvent struct {
	Plan    model.Plan
	Entries []model.PlanEntry
	Time    time.Time
}

// RejectEvent is published when a payload is refused. Reason carries the
// validation error message.
type RejectEvent struct {
	Reason string
	Time   time.Time
}
