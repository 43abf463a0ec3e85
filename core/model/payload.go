package model

import (
	"encoding/json"
	"errors"
)

// MissingDataMessage is the error reported to clients when the request lacks
// load, fuels or units.
const MissingDataMessage = "The payload is missing data"

// ErrMissingData is returned when the request lacks load, fuels or units.
var ErrMissingData = errors.New("payload is missing data")

// Fuels holds the market conditions of a request. Every field is optional.
type Fuels struct {
	Gas      *float64 `json:"gas(euro/MWh)" yaml:"gas"`
	Kerosine *float64 `json:"kerosine(euro/MWh)" yaml:"kerosine"`
	// CO2 is parsed for completeness but does not affect dispatch.
	CO2  *float64 `json:"co2(euro/ton)" yaml:"co2"`
	Wind *float64 `json:"wind(%)" yaml:"wind"`

	// keys counts the members of the decoded JSON object, known or not.
	keys int
}

// UnmarshalJSON decodes the fuels object and remembers how many members it
// had.
func (f *Fuels) UnmarshalJSON(b []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}
	type plain Fuels
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Fuels(v)
	f.keys = len(members)
	return nil
}

// IsEmpty reports whether the fuels object had no members at all. An object
// holding only unrecognised keys is not empty; its prices are absent.
func (f Fuels) IsEmpty() bool {
	return f.keys == 0 && f.Gas == nil && f.Kerosine == nil && f.CO2 == nil && f.Wind == nil
}

// GasPrice returns the gas price or 0 when absent.
func (f Fuels) GasPrice() float64 { return deref(f.Gas) }

// KerosinePrice returns the kerosine price or 0 when absent.
func (f Fuels) KerosinePrice() float64 { return deref(f.Kerosine) }

// CO2Price returns the CO2 price or 0 when absent.
func (f Fuels) CO2Price() float64 { return deref(f.CO2) }

// UnitDescriptor is a powerplant as described in the request payload.
type UnitDescriptor struct {
	Name       string   `json:"name" yaml:"name"`
	Kind       UnitKind `json:"type" yaml:"type"`
	Efficiency *float64 `json:"efficiency,omitempty" yaml:"efficiency"`
	PMin       *float64 `json:"pmin,omitempty" yaml:"pmin"`
	PMax       float64  `json:"pmax" yaml:"pmax"`
}

// Payload is the production plan request.
type Payload struct {
	Load        *float64         `json:"load" yaml:"load"`
	Fuels       *Fuels           `json:"fuels" yaml:"fuels"`
	Powerplants []UnitDescriptor `json:"powerplants" yaml:"powerplants"`
}

// Units validates the payload and builds the generating units. Wind units are
// scaled by the wind availability of the fuels section.
func (p Payload) Units() ([]Unit, error) {
	if p.Load == nil || *p.Load == 0 || p.Fuels == nil || p.Fuels.IsEmpty() || len(p.Powerplants) == 0 {
		return nil, ErrMissingData
	}
	units := make([]Unit, 0, len(p.Powerplants))
	for _, d := range p.Powerplants {
		units = append(units, NewUnit(d, p.Fuels.Wind))
	}
	return units, nil
}

// LoadMW returns the requested load or 0 when absent.
func (p Payload) LoadMW() float64 { return deref(p.Load) }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
