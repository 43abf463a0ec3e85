package scenarios

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/productionplan/core/dispatch"
	"github.com/kilianp07/productionplan/core/events"
	"github.com/kilianp07/productionplan/core/model"
	"github.com/kilianp07/productionplan/infra/logger"
	"github.com/kilianp07/productionplan/infra/metrics"
	"github.com/kilianp07/productionplan/infra/mqtt"
	"github.com/kilianp07/productionplan/internal/eventbus"
)

const tolerance = 1e-9

func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}
	pub := mqtt.NewMockPublisher()
	bus := eventbus.New()
	defer bus.Close()
	sub := bus.Subscribe()

	mgr, err := dispatch.NewManager(dispatch.Config{Correction: sc.Correction}, logger.NopLogger{}, sink, pub, bus)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	plan, entries, err := mgr.Plan(context.Background(), sc.Payload)
	var ev eventbus.Event
	select {
	case ev = <-sub:
	case <-time.After(time.Second):
		t.Fatalf("scenario %s: no event published", sc.Name)
	}

	if sc.Expected.Error != "" {
		checkRejected(t, sc, err, ev, pub)
		return
	}
	if err != nil {
		t.Fatalf("scenario %s: unexpected error %v", sc.Name, err)
	}
	if _, ok := ev.(events.PlanEvent); !ok {
		t.Errorf("scenario %s expected plan event, got %T", sc.Name, ev)
	}
	checkEntries(t, sc.Name, sc.Expected.Plan, entries)
	if !near(plan.Excess, sc.Expected.Excess) {
		t.Errorf("scenario %s expected excess %v, got %v", sc.Name, sc.Expected.Excess, plan.Excess)
	}
	if !near(plan.Unserved, sc.Expected.Unserved) {
		t.Errorf("scenario %s expected unserved %v, got %v", sc.Name, sc.Expected.Unserved, plan.Unserved)
	}
	if len(plan.Corrections) != sc.Expected.Corrections {
		t.Errorf("scenario %s expected %d corrections, got %d", sc.Name, sc.Expected.Corrections, len(plan.Corrections))
	}
	if got := len(pub.Published()); got != 1 {
		t.Errorf("scenario %s expected 1 published plan, got %d", sc.Name, got)
	}
}

func checkRejected(t *testing.T, sc *Scenario, err error, ev eventbus.Event, pub *mqtt.MockPublisher) {
	t.Helper()
	if sc.Expected.Error != "missing_data" {
		t.Fatalf("scenario %s: unsupported expected error %q", sc.Name, sc.Expected.Error)
	}
	if !errors.Is(err, model.ErrMissingData) {
		t.Errorf("scenario %s expected missing data, got %v", sc.Name, err)
	}
	if _, ok := ev.(events.RejectEvent); !ok {
		t.Errorf("scenario %s expected reject event, got %T", sc.Name, ev)
	}
	if got := len(pub.Published()); got != 0 {
		t.Errorf("scenario %s expected nothing published, got %d", sc.Name, got)
	}
}

func checkEntries(t *testing.T, name string, want, got []model.PlanEntry) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("scenario %s expected %d entries, got %d: %v", name, len(want), len(got), got)
	}
	for i := range want {
		if want[i].Name != got[i].Name || !near(want[i].P, got[i].P) {
			t.Errorf("scenario %s entry %d: expected %v, got %v", name, i, want[i], got[i])
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < tolerance }
