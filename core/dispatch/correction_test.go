package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/productionplan/core/model"
)

// headroomCase needs two earlier units to absorb the overshoot of gasB.
func headroomCase() ([]model.Unit, model.Fuels) {
	return []model.Unit{
		gasUnit("gasB", 0.5, 100, 200),
		gasUnit("gasA", 0.6, 50, 55),
		windUnit("wind", 90),
	}, model.Fuels{Gas: ptr(10)}
}

func TestParseCorrectionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    CorrectionMode
		wantErr bool
	}{
		{"", HeadroomCorrection, false},
		{"headroom", HeadroomCorrection, false},
		{"legacy", LegacyCorrection, false},
		{"greedy", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCorrectionMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "legacy", LegacyCorrection.String())
	assert.Equal(t, "unknown", CorrectionMode(7).String())
}

func TestHeadroomCorrection_PropagatesBackwards(t *testing.T) {
	units, fuels := headroomCase()
	plan := NewMeritOrder(units, fuels, HeadroomCorrection).Allocate(150)

	assert.Equal(t, []model.PlanEntry{
		{Name: "gasA", P: 50},
		{Name: "gasB", P: 100},
		{Name: "wind", P: 0},
	}, Export(plan))
	assert.Equal(t, 150.0, plan.Committed)
	assert.Zero(t, plan.Excess)
	require.Len(t, plan.Corrections, 1)
	c := plan.Corrections[0]
	assert.Equal(t, "gasB", c.Unit)
	assert.Equal(t, 95.0, c.Overshoot)
	assert.Equal(t, map[string]float64{"gasA": 5, "wind": 90}, c.Taken)
	assert.Zero(t, c.Residual)
}

func TestLegacyCorrection_UnboundedSubtraction(t *testing.T) {
	units, fuels := headroomCase()
	plan := NewMeritOrder(units, fuels, LegacyCorrection).Allocate(150)

	assert.Equal(t, []model.PlanEntry{
		{Name: "wind", P: 90},
		{Name: "gasA", P: -40},
		{Name: "gasB", P: 100},
	}, Export(plan))
	assert.Equal(t, 150.0, plan.Committed)
	require.Len(t, plan.Corrections, 1)
	assert.Equal(t, map[string]float64{"gasA": 95}, plan.Corrections[0].Taken)
}

func TestCorrection_NoEarlierUnitReportsExcess(t *testing.T) {
	units := []model.Unit{gasUnit("gas", 0.53, 100, 460), jetUnit("tj1", 0.3, 0, 16)}
	fuels := model.Fuels{Gas: ptr(13.4), Kerosine: ptr(50.8)}
	for _, mode := range []CorrectionMode{HeadroomCorrection, LegacyCorrection} {
		t.Run(mode.String(), func(t *testing.T) {
			plan := NewMeritOrder(units, fuels, mode).Allocate(50)
			assert.Equal(t, []model.PlanEntry{{Name: "gas", P: 100}, {Name: "tj1", P: 0}}, Export(plan))
			assert.Equal(t, 50.0, plan.Excess)
			assert.Equal(t, 100.0, plan.Committed)
			require.Len(t, plan.Corrections, 1)
			assert.Equal(t, 50.0, plan.Corrections[0].Residual)
		})
	}
}

func TestHeadroomCorrection_PartialResidual(t *testing.T) {
	// gasA can give back only 5 MW of the 50 MW overshoot
	units := []model.Unit{
		gasUnit("gasA", 0.6, 50, 55),
		gasUnit("gasB", 0.5, 100, 200),
	}
	plan := NewMeritOrder(units, model.Fuels{Gas: ptr(10)}, HeadroomCorrection).Allocate(105)
	assert.Equal(t, []model.PlanEntry{{Name: "gasA", P: 50}, {Name: "gasB", P: 100}}, Export(plan))
	assert.Equal(t, 45.0, plan.Excess)
	assert.Equal(t, 150.0, plan.Committed)
	assert.Zero(t, plan.Unserved)
}

func TestApply_HeadroomIgnoresNegativeOvershoot(t *testing.T) {
	allocated := []model.Allocation{{Unit: gasUnit("a", 0.5, 10, 100), Output: 50}}
	corr, absorbed := HeadroomCorrection.apply(allocated, "b", -5)
	assert.Zero(t, absorbed)
	assert.Empty(t, corr.Taken)
	assert.Equal(t, 50.0, allocated[0].Output)

	corr, absorbed = LegacyCorrection.apply(allocated, "b", -5)
	assert.Equal(t, -5.0, absorbed)
	assert.Equal(t, 55.0, allocated[0].Output)
	assert.Equal(t, -5.0, corr.Taken["a"])
}
