package metrics

import (
	"time"

	"github.com/kilianp07/productionplan/core/model"
)

// UnitOutput is the output decided for one unit in a plan.
type UnitOutput struct {
	Name      string
	Kind      string
	Output    float64
	Cost      float64
	CostKnown bool
	// CO2Factor is the emission factor in ton/MWh.
	CO2Factor float64
}

// PlanRecord summarises a computed production plan.
type PlanRecord struct {
	PlanID      string
	Time        time.Time
	Mode        string
	Load        float64
	Committed   float64
	Unserved    float64
	Excess      float64
	Corrections int
	// CO2Price in euro/ton, 0 when the request did not carry one.
	CO2Price float64
	Units    []UnitOutput
}

// NewPlanRecord builds the record of plan computed with the given correction mode.
func NewPlanRecord(plan model.Plan, mode string, at time.Time) PlanRecord {
	rec := PlanRecord{
		PlanID:      plan.ID,
		Time:        at,
		Mode:        mode,
		Load:        plan.Load,
		Committed:   plan.Committed,
		Unserved:    plan.Unserved,
		Excess:      plan.Excess,
		Corrections: len(plan.Corrections),
		Units:       make([]UnitOutput, 0, len(plan.Allocations)),
	}
	for _, a := range plan.Allocations {
		rec.Units = append(rec.Units, UnitOutput{
			Name:      a.Unit.Name,
			Kind:      a.Unit.Kind.String(),
			Output:    a.Output,
			Cost:      a.Cost,
			CostKnown: a.CostKnown,
			CO2Factor: a.Unit.CO2Factor,
		})
	}
	return rec
}

// MetricsSink records production plans.
type MetricsSink interface {
	RecordPlan(rec PlanRecord) error
}

// RejectRecord describes a request refused before dispatch.
type RejectRecord struct {
	Reason string
	Time   time.Time
}

// RejectRecorder is implemented by sinks able to count rejected requests.
type RejectRecorder interface {
	RecordReject(rec RejectRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanRecord) error     { return nil }
func (NopSink) RecordReject(RejectRecord) error { return nil }
