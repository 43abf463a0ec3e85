// Package cost computes the marginal cost used to build the merit order.
package cost

import "github.com/kilianp07/productionplan/core/model"

// Cost is a marginal cost in euro/MWh. Known is false when the price or the
// efficiency needed to compute it was missing or zero.
type Cost struct {
	Value float64
	Known bool
}

// Unknown is returned for thermal units whose cost cannot be computed.
var Unknown = Cost{}

// Marginal returns the marginal cost of the unit. Wind is always free. Gas
// and turbojet units divide their fuel price by their efficiency.
func Marginal(u model.Unit, fuels model.Fuels) Cost {
	switch u.Kind {
	case model.KindWindTurbine:
		return Cost{Value: 0, Known: true}
	case model.KindGasFired:
		return fuelCost(fuels.GasPrice(), u.Efficiency)
	default:
		return fuelCost(fuels.KerosinePrice(), u.Efficiency)
	}
}

func fuelCost(price float64, efficiency *float64) Cost {
	if price == 0 || efficiency == nil || *efficiency == 0 {
		return Unknown
	}
	return Cost{Value: price / *efficiency, Known: true}
}

// Less orders costs ascending with unknown costs after every known one.
func Less(a, b Cost) bool {
	if a.Known != b.Known {
		return a.Known
	}
	return a.Value < b.Value
}
