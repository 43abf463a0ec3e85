package dispatch

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/kilianp07/productionplan/core/cost"
	"github.com/kilianp07/productionplan/core/model"
)

// ranked is a unit together with the cost that placed it in the merit order.
type ranked struct {
	unit model.Unit
	cost cost.Cost
}

// MeritOrder allocates a load over units sorted from cheapest to most
// expensive. A MeritOrder is built for a single request and is not shared.
type MeritOrder struct {
	units      []ranked
	correction CorrectionMode
}

// NewMeritOrder ranks the units once using the fuel prices. The sort is
// stable: units with the same cost keep their input order, and thermal units
// whose cost is unknown are placed after all the others.
func NewMeritOrder(units []model.Unit, fuels model.Fuels, mode CorrectionMode) *MeritOrder {
	list := make([]ranked, len(units))
	for i, u := range units {
		list[i] = ranked{unit: u, cost: cost.Marginal(u, fuels)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return cost.Less(list[i].cost, list[j].cost)
	})
	return &MeritOrder{units: list, correction: mode}
}

// Units returns the units in merit order.
func (m *MeritOrder) Units() []model.Unit {
	out := make([]model.Unit, len(m.units))
	for i, r := range m.units {
		out[i] = r.unit
	}
	return out
}

// Allocate fills load in a single pass over the merit order. A unit whose
// share of the remaining load is below its minimum runs at its minimum and
// the overshoot is taken back from the units already committed.
func (m *MeritOrder) Allocate(load float64) model.Plan {
	plan := model.Plan{ID: uuid.NewString(), Load: load}
	var (
		committed float64
		allocated []model.Allocation
		ranks     []int
		idle      []int
	)
	for i, r := range m.units {
		u := r.unit
		if committed >= load || u.PMax <= 0 {
			idle = append(idle, i)
			continue
		}
		want := model.Round1(math.Min(load-committed, u.PMax))
		if want <= 0 {
			idle = append(idle, i)
			continue
		}
		entry := model.Allocation{Unit: u, Cost: r.cost.Value, CostKnown: r.cost.Known}
		if want < u.PMin {
			overshoot := committed + u.PMin - load
			corr, absorbed := m.correction.apply(allocated, u.Name, overshoot)
			plan.Corrections = append(plan.Corrections, corr)
			plan.Excess = model.Round1(plan.Excess + corr.Residual)
			committed = model.Round1(committed - absorbed + u.PMin)
			entry.Output = u.PMin
		} else {
			committed = model.Round1(committed + want)
			entry.Output = want
		}
		allocated = append(allocated, entry)
		ranks = append(ranks, i)
	}
	plan.Allocations = m.arrange(allocated, ranks, idle)
	plan.Committed = committed
	if committed < load {
		plan.Unserved = model.Round1(load - committed)
	}
	return plan
}

// arrange lists running units in dispatch order followed by every unit with a
// zero output in merit order. A committed unit can end at zero output when a
// correction took back all of it.
func (m *MeritOrder) arrange(allocated []model.Allocation, ranks, idle []int) []model.Allocation {
	out := make([]model.Allocation, 0, len(m.units))
	for i, a := range allocated {
		if a.Output == 0 {
			idle = append(idle, ranks[i])
			continue
		}
		out = append(out, a)
	}
	sort.Ints(idle)
	for _, i := range idle {
		r := m.units[i]
		out = append(out, model.Allocation{Unit: r.unit, Cost: r.cost.Value, CostKnown: r.cost.Known})
	}
	return out
}
