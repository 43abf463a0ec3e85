package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanRecord_EcoKPIs(t *testing.T) {
	rec := PlanRecord{
		CO2Price: 20,
		Units: []UnitOutput{
			{Name: "windpark1", Kind: "windturbine", Output: 90},
			{Name: "gasfiredbig1", Kind: "gasfired", Output: 390, CO2Factor: 0.3},
			{Name: "tj1", Kind: "turbojet", Output: 0},
		},
	}
	assert.InDelta(t, 117, rec.Emissions(), 1e-9)
	assert.InDelta(t, 2340, rec.EmissionsCost(), 1e-9)
	assert.InDelta(t, 0.1875, rec.RenewableShare(), 1e-9)

	assert.Zero(t, PlanRecord{}.RenewableShare())
	assert.Zero(t, PlanRecord{}.Emissions())
}

func TestPlanRecord_EcoKPIsIgnoreNegativeOutput(t *testing.T) {
	rec := PlanRecord{
		CO2Price: 10,
		Units: []UnitOutput{
			{Name: "wind", Kind: "windturbine", Output: 90},
			{Name: "gasA", Kind: "gasfired", Output: -40, CO2Factor: 0.3},
			{Name: "gasB", Kind: "gasfired", Output: 100, CO2Factor: 0.3},
		},
	}
	assert.InDelta(t, 30, rec.Emissions(), 1e-9)
	assert.InDelta(t, 300, rec.EmissionsCost(), 1e-9)
	assert.InDelta(t, 90.0/190, rec.RenewableShare(), 1e-9)
}
