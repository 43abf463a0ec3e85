package dispatch

import "github.com/kilianp07/productionplan/core/model"

func ptr(f float64) *float64 { return &f }

func gasUnit(name string, eff, pmin, pmax float64) model.Unit {
	return model.Unit{Name: name, Kind: model.KindGasFired, Efficiency: ptr(eff), PMin: pmin, PMax: pmax}
}

func jetUnit(name string, eff, pmin, pmax float64) model.Unit {
	return model.Unit{Name: name, Kind: model.KindTurbojet, Efficiency: ptr(eff), PMin: pmin, PMax: pmax}
}

func windUnit(name string, pmax float64) model.Unit {
	return model.Unit{Name: name, Kind: model.KindWindTurbine, Efficiency: ptr(1), PMax: pmax}
}

// referenceUnits are the six powerplants of the reference payloads, with wind
// already scaled by the given availability.
func referenceUnits(windPct float64) []model.Unit {
	return []model.Unit{
		gasUnit("gasfiredbig1", 0.53, 100, 460),
		gasUnit("gasfiredbig2", 0.53, 100, 460),
		gasUnit("gasfiredsomewhatsmaller", 0.37, 40, 210),
		jetUnit("tj1", 0.3, 0, 16),
		windUnit("windpark1", model.Round1(150*windPct/100)),
		windUnit("windpark2", model.Round1(36*windPct/100)),
	}
}

func referenceFuels(windPct float64) model.Fuels {
	return model.Fuels{Gas: ptr(13.4), Kerosine: ptr(50.8), CO2: ptr(20), Wind: ptr(windPct)}
}

func outputs(plan model.Plan) map[string]float64 {
	out := make(map[string]float64, len(plan.Allocations))
	for _, a := range plan.Allocations {
		out[a.Unit.Name] = a.Output
	}
	return out
}

func sumOutputs(plan model.Plan) float64 {
	var s float64
	for _, a := range plan.Allocations {
		s += a.Output
	}
	return model.Round1(s)
}
