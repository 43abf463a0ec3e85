package model

// Allocation is the output decided for one unit.
type Allocation struct {
	Unit   Unit    `json:"unit"`
	Output float64 `json:"output"`
	// Cost is the marginal cost used to rank the unit.
	Cost      float64 `json:"cost"`
	CostKnown bool    `json:"cost_known"`
}

// Correction records a minimum-output correction: Unit was forced to its
// minimum and Overshoot MW were clawed back from earlier allocations.
type Correction struct {
	Unit      string             `json:"unit"`
	Overshoot float64            `json:"overshoot"`
	Taken     map[string]float64 `json:"taken"`
	// Residual is the part of the overshoot nobody could absorb.
	Residual float64 `json:"residual"`
}

// Plan is the allocation result of one request. Allocations lists units with
// a nonzero output in dispatch order followed by idle units in merit order.
type Plan struct {
	ID          string       `json:"id"`
	Load        float64      `json:"load"`
	Allocations []Allocation `json:"allocations"`
	Committed   float64      `json:"committed"`
	// Unserved is the part of the load left uncovered when capacity is short.
	Unserved float64 `json:"unserved"`
	// Excess is the committed output above load that no unit could absorb.
	Excess      float64      `json:"excess"`
	Corrections []Correction `json:"corrections,omitempty"`
}

// Running returns the number of units with a nonzero output.
func (p Plan) Running() int {
	n := 0
	for _, a := range p.Allocations {
		if a.Output != 0 {
			n++
		}
	}
	return n
}

// PlanEntry is the exported form of an allocation.
type PlanEntry struct {
	Name string  `json:"name" yaml:"name"`
	P    float64 `json:"p" yaml:"p"`
}
