package dispatch

import "github.com/kilianp07/productionplan/core/model"

// Export maps a plan to the response entries, one per unit, in plan order.
func Export(plan model.Plan) []model.PlanEntry {
	out := make([]model.PlanEntry, 0, len(plan.Allocations))
	for _, a := range plan.Allocations {
		out = append(out, model.PlanEntry{Name: a.Unit.Name, P: model.Round1(a.Output)})
	}
	return out
}
