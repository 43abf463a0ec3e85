package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestNewUnit_WindScaling(t *testing.T) {
	d := UnitDescriptor{Name: "windpark1", Kind: KindWindTurbine, Efficiency: fptr(1), PMax: 150}
	u := NewUnit(d, fptr(60))
	if u.PMax != 90 {
		t.Fatalf("expected 90 got %v", u.PMax)
	}
	u = NewUnit(UnitDescriptor{Name: "w", Kind: KindWindTurbine, PMax: 36}, fptr(27))
	if u.PMax != 9.7 {
		t.Fatalf("expected 9.7 got %v", u.PMax)
	}
	u = NewUnit(UnitDescriptor{Name: "w", Kind: KindWindTurbine, PMax: 36}, fptr(0))
	if u.PMax != 0 {
		t.Fatalf("expected 0 got %v", u.PMax)
	}
}

func TestNewUnit_WindScalingHalfway(t *testing.T) {
	cases := []struct {
		nameplate, wind, want float64
	}{
		{245, 1, 2.5},
		{45, 1, 0.5},
		{15, 63, 9.4},
	}
	for _, c := range cases {
		u := NewUnit(UnitDescriptor{Name: "w", Kind: KindWindTurbine, PMax: c.nameplate}, fptr(c.wind))
		if u.PMax != c.want {
			t.Errorf("nameplate %v at %v%%: expected %v got %v", c.nameplate, c.wind, c.want, u.PMax)
		}
	}
}

func TestNewUnit_ThermalIgnoresWind(t *testing.T) {
	d := UnitDescriptor{Name: "gas", Kind: KindGasFired, Efficiency: fptr(0.53), PMin: fptr(100), PMax: 460}
	u := NewUnit(d, fptr(10))
	if u.PMax != 460 || u.PMin != 100 {
		t.Fatalf("unexpected limits %+v", u)
	}
	if u.CO2Factor != GasCO2Factor {
		t.Fatalf("gas unit should carry the co2 factor")
	}
}

func TestNewUnit_DefaultPMin(t *testing.T) {
	u := NewUnit(UnitDescriptor{Name: "tj1", Kind: KindTurbojet, PMax: 16}, nil)
	if u.PMin != 0 {
		t.Fatalf("expected default pmin 0 got %v", u.PMin)
	}
}

func TestUnitKind_JSON(t *testing.T) {
	var d UnitDescriptor
	if err := json.Unmarshal([]byte(`{"name":"a","type":"turbojet","pmax":16}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Kind != KindTurbojet {
		t.Fatalf("expected turbojet got %v", d.Kind)
	}
	err := json.Unmarshal([]byte(`{"name":"a","type":"nuclear","pmax":16}`), &d)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind got %v", err)
	}
	b, err := json.Marshal(KindWindTurbine)
	if err != nil || string(b) != `"windturbine"` {
		t.Fatalf("marshal: %s %v", b, err)
	}
}

func TestUnit_Headroom(t *testing.T) {
	u := Unit{PMin: 100, PMax: 460}
	if h := u.Headroom(150); h != 50 {
		t.Fatalf("expected 50 got %v", h)
	}
	if h := u.Headroom(80); h != 0 {
		t.Fatalf("expected 0 got %v", h)
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		0.25:   0.2,
		0.75:   0.8,
		89.99:  90,
		-1.25:  -1.2,
		123.44: 123.4,
		2.45:   2.5,
		0.45:   0.5,
		9.45:   9.4,
		1.05:   1.1,
		0.15:   0.1,
	}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Errorf("Round1(%v) = %v want %v", in, got, want)
		}
	}
}
