package publish

import (
	"context"
	"errors"
	"time"

	"github.com/kilianp07/productionplan/core/model"
)

// ErrNotConnected is returned when the publisher has no live connection.
var ErrNotConnected = errors.New("publisher not connected")

// PlanMessage is the document published for every computed plan.
type PlanMessage struct {
	PlanID    string            `json:"plan_id"`
	Load      float64           `json:"load"`
	Committed float64           `json:"committed"`
	Unserved  float64           `json:"unserved,omitempty"`
	Excess    float64           `json:"excess,omitempty"`
	Plan      []model.PlanEntry `json:"plan"`
	Timestamp int64             `json:"timestamp"`
}

// NewPlanMessage builds the message for plan and its exported entries.
func NewPlanMessage(plan model.Plan, entries []model.PlanEntry, at time.Time) PlanMessage {
	return PlanMessage{
		PlanID:    plan.ID,
		Load:      plan.Load,
		Committed: plan.Committed,
		Unserved:  plan.Unserved,
		Excess:    plan.Excess,
		Plan:      entries,
		Timestamp: at.UnixMilli(),
	}
}

// Publisher sends computed plans to downstream consumers.
type Publisher interface {
	PublishPlan(ctx context.Context, msg PlanMessage) error
}

// NopPublisher drops every message.
type NopPublisher struct{}

func (NopPublisher) PublishPlan(context.Context, PlanMessage) error { return nil }
