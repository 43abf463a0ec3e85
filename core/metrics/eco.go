package metrics

import "gonum.org/v1/gonum/floats"

// outputs returns the positive outputs of the record with the matching CO2
// factors and a wind mask.
func (r PlanRecord) outputs() (out, co2, wind []float64) {
	out = make([]float64, 0, len(r.Units))
	co2 = make([]float64, 0, len(r.Units))
	wind = make([]float64, 0, len(r.Units))
	for _, u := range r.Units {
		if u.Output <= 0 {
			continue
		}
		out = append(out, u.Output)
		co2 = append(co2, u.CO2Factor)
		w := 0.0
		if u.Kind == "windturbine" {
			w = 1
		}
		wind = append(wind, w)
	}
	return out, co2, wind
}

// Emissions returns the CO2 emitted by the plan in ton/h.
func (r PlanRecord) Emissions() float64 {
	out, co2, _ := r.outputs()
	if len(out) == 0 {
		return 0
	}
	return floats.Dot(out, co2)
}

// EmissionsCost returns the CO2 cost of the plan in euro/h.
func (r PlanRecord) EmissionsCost() float64 {
	return r.Emissions() * r.CO2Price
}

// RenewableShare returns the fraction of the committed output produced by
// wind units, or 0 when nothing is committed.
func (r PlanRecord) RenewableShare() float64 {
	out, _, wind := r.outputs()
	total := floats.Sum(out)
	if total == 0 {
		return 0
	}
	return floats.Dot(out, wind) / total
}
