package dispatch

import (
	"fmt"
	"math"

	"github.com/kilianp07/productionplan/core/model"
)

// CorrectionMode selects how the overshoot of a unit forced to its minimum
// output is taken back from the units committed before it.
type CorrectionMode int

const (
	// HeadroomCorrection reduces committed units from the most recent one
	// backwards, each by at most output - PMin. Whatever cannot be absorbed
	// is reported as excess.
	HeadroomCorrection CorrectionMode = iota
	// LegacyCorrection removes the whole overshoot from the last committed
	// unit, even if that pushes it below its own minimum.
	LegacyCorrection
)

// epsilon below which a residual overshoot is considered absorbed.
const epsilon = 1e-9

// ParseCorrectionMode maps a configuration value to a CorrectionMode. An empty
// string selects HeadroomCorrection.
func ParseCorrectionMode(s string) (CorrectionMode, error) {
	switch s {
	case "", "headroom":
		return HeadroomCorrection, nil
	case "legacy":
		return LegacyCorrection, nil
	default:
		return 0, fmt.Errorf("unknown correction mode %q", s)
	}
}

func (c CorrectionMode) String() string {
	switch c {
	case HeadroomCorrection:
		return "headroom"
	case LegacyCorrection:
		return "legacy"
	default:
		return "unknown"
	}
}

// apply takes overshoot MW back from allocated, in place. It returns the
// record of the correction and the amount actually removed.
func (c CorrectionMode) apply(allocated []model.Allocation, unit string, overshoot float64) (model.Correction, float64) {
	corr := model.Correction{Unit: unit, Overshoot: model.Round1(overshoot), Taken: map[string]float64{}}
	if overshoot <= 0 && c == HeadroomCorrection {
		// only reachable with PMin > PMax; nothing to take back
		return corr, 0
	}
	if len(allocated) == 0 {
		if overshoot > 0 {
			corr.Residual = model.Round1(overshoot)
		}
		return corr, 0
	}
	if c == LegacyCorrection {
		last := &allocated[len(allocated)-1]
		last.Output = model.Round1(last.Output - overshoot)
		corr.Taken[last.Unit.Name] = model.Round1(overshoot)
		return corr, overshoot
	}
	remaining := overshoot
	for i := len(allocated) - 1; i >= 0 && remaining > epsilon; i-- {
		a := &allocated[i]
		take := math.Min(a.Unit.Headroom(a.Output), remaining)
		if take <= 0 {
			continue
		}
		a.Output = model.Round1(a.Output - take)
		corr.Taken[a.Unit.Name] = model.Round1(take)
		remaining -= take
	}
	if remaining > epsilon {
		corr.Residual = model.Round1(remaining)
	} else {
		remaining = 0
	}
	return corr, overshoot - remaining
}
