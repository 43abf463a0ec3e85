package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// UnitKind identifies the technology of a generating unit. It determines
// which fuel price drives the marginal cost.
type UnitKind int

const (
	KindGasFired UnitKind = iota
	KindTurbojet
	KindWindTurbine
)

// GasCO2Factor is the emission factor of gas-fired units in ton/MWh. It is
// informative only and never used to order or size units.
const GasCO2Factor = 0.3

// ErrUnknownKind is returned when a unit descriptor carries an unsupported type.
var ErrUnknownKind = errors.New("unknown powerplant type")

// String returns the payload representation of the kind.
func (k UnitKind) String() string {
	switch k {
	case KindGasFired:
		return "gasfired"
	case KindTurbojet:
		return "turbojet"
	case KindWindTurbine:
		return "windturbine"
	default:
		return "unknown"
	}
}

// ParseUnitKind maps a payload type string to a UnitKind.
func ParseUnitKind(s string) (UnitKind, error) {
	switch s {
	case "gasfired":
		return KindGasFired, nil
	case "turbojet":
		return KindTurbojet, nil
	case "windturbine":
		return KindWindTurbine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalJSON encodes the kind as its payload string.
func (k UnitKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a payload type string.
func (k *UnitKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseUnitKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// UnmarshalText decodes a type string from text formats such as YAML.
func (k *UnitKind) UnmarshalText(b []byte) error {
	v, err := ParseUnitKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// IsThermal reports whether the unit burns fuel.
func (k UnitKind) IsThermal() bool {
	return k == KindGasFired || k == KindTurbojet
}

// Unit is a generating unit with resolved capacity limits. Units are values:
// the dispatcher never mutates them.
type Unit struct {
	Name string
	Kind UnitKind
	// Efficiency is nil when the descriptor did not provide one.
	Efficiency *float64
	PMin       float64 // MW
	PMax       float64 // MW, already scaled by wind availability for wind units
	// CO2Factor is carried for reporting, it does not influence dispatch.
	CO2Factor float64
}

// NewUnit builds a unit from its descriptor. For wind units PMax is scaled by
// windPct and rounded to one decimal; the nameplate value is not kept.
func NewUnit(d UnitDescriptor, windPct *float64) Unit {
	u := Unit{
		Name:       d.Name,
		Kind:       d.Kind,
		Efficiency: d.Efficiency,
		PMax:       d.PMax,
	}
	if d.PMin != nil {
		u.PMin = *d.PMin
	}
	if d.Kind == KindWindTurbine && windPct != nil {
		u.PMax = Round1(d.PMax * *windPct / 100)
	}
	if d.Kind == KindGasFired {
		u.CO2Factor = GasCO2Factor
	}
	return u
}

// Headroom returns how much output can be removed from the unit while it
// keeps running at or above its minimum.
func (u Unit) Headroom(output float64) float64 {
	h := output - u.PMin
	if h < 0 {
		return 0
	}
	return h
}

// Round1 rounds x to one decimal. The exact binary value of x is rounded, so
// 2.45 (stored slightly above) gives 2.5 while the exact tie 0.25 gives 0.2.
func Round1(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return r
}
