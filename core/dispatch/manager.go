package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kilianp07/productionplan/core/events"
	"github.com/kilianp07/productionplan/core/logger"
	"github.com/kilianp07/productionplan/core/metrics"
	"github.com/kilianp07/productionplan/core/model"
	"github.com/kilianp07/productionplan/core/monitoring"
	"github.com/kilianp07/productionplan/core/publish"
	"github.com/kilianp07/productionplan/internal/eventbus"
)

// Manager turns requests into production plans. It holds no per-request
// state and is safe for concurrent use.
type Manager struct {
	mode           CorrectionMode
	publishTimeout time.Duration
	logger         logger.Logger
	metrics        metrics.MetricsSink
	publisher      publish.Publisher
	bus            eventbus.EventBus
	now            func() time.Time
}

// NewManager creates a plan manager. The metrics sink, publisher and bus are
// optional.
func NewManager(cfg Config, log logger.Logger, sink metrics.MetricsSink, pub publish.Publisher, bus eventbus.EventBus) (*Manager, error) {
	if log == nil {
		return nil, fmt.Errorf("dispatch: nil logger provided to NewManager")
	}
	cfg.SetDefaults()
	mode, err := ParseCorrectionMode(cfg.Correction)
	if err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Manager{
		mode:           mode,
		publishTimeout: cfg.PublishTimeout(),
		logger:         log,
		metrics:        sink,
		publisher:      pub,
		bus:            bus,
		now:            time.Now,
	}, nil
}

// Mode returns the correction mode used by the manager.
func (m *Manager) Mode() CorrectionMode { return m.mode }

// Plan validates payload, allocates its load over the units in merit order
// and returns the plan with its exported entries. Only validation errors are
// returned; publication and metrics failures are logged.
func (m *Manager) Plan(ctx context.Context, payload model.Payload) (model.Plan, []model.PlanEntry, error) {
	start := m.now()
	units, err := payload.Units()
	if err != nil {
		m.reject(err)
		return model.Plan{}, nil, err
	}

	mo := NewMeritOrder(units, *payload.Fuels, m.mode)
	m.logger.Debugw("merit order", map[string]any{"units": names(mo.Units())})

	plan := mo.Allocate(payload.LoadMW())
	entries := Export(plan)
	m.summarise(plan)

	m.publish(ctx, plan, entries)
	m.record(plan, entries, payload.Fuels.CO2Price(), start)
	return plan, entries, nil
}

func (m *Manager) reject(err error) {
	m.logger.Errorf("rejecting payload: %v", err)
	plansComputed.WithLabelValues("rejected").Inc()
	tags := map[string]string{"module": "plan_manager"}
	if errors.Is(err, model.ErrMissingData) {
		tags["reason"] = "missing_data"
	}
	monitoring.CaptureException(err, tags)
	now := m.now()
	if r, ok := m.metrics.(metrics.RejectRecorder); ok {
		if rerr := r.RecordReject(metrics.RejectRecord{Reason: err.Error(), Time: now}); rerr != nil {
			m.logger.Errorf("reject metrics error: %v", rerr)
		}
	}
	if m.bus != nil {
		m.bus.Publish(events.RejectEvent{Reason: err.Error(), Time: now})
	}
}

func (m *Manager) summarise(plan model.Plan) {
	m.logger.Infow("plan computed", map[string]any{
		"plan_id":    plan.ID,
		"load":       plan.Load,
		"committed":  plan.Committed,
		"running":    plan.Running(),
		"units":      len(plan.Allocations),
		"correction": m.mode.String(),
	})
	for _, c := range plan.Corrections {
		m.logger.Debugw("minimum output correction", map[string]any{
			"plan_id":   plan.ID,
			"unit":      c.Unit,
			"overshoot": c.Overshoot,
			"taken":     c.Taken,
			"residual":  c.Residual,
		})
	}
	if plan.Excess > 0 {
		m.logger.Warnf("plan %s: %.1f MW above load could not be absorbed", plan.ID, plan.Excess)
	}
	if plan.Unserved > 0 {
		m.logger.Warnf("plan %s: %.1f MW of load left unserved", plan.ID, plan.Unserved)
	}
}

func (m *Manager) publish(ctx context.Context, plan model.Plan, entries []model.PlanEntry) {
	if m.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, m.publishTimeout)
	defer cancel()
	if err := m.publisher.PublishPlan(ctx, publish.NewPlanMessage(plan, entries, m.now())); err != nil {
		publishFailure.Inc()
		m.logger.Errorf("publish plan %s: %v", plan.ID, err)
		monitoring.CaptureException(err, map[string]string{"module": "plan_manager", "plan_id": plan.ID})
		return
	}
	publishSuccess.Inc()
}

func (m *Manager) record(plan model.Plan, entries []model.PlanEntry, co2Price float64, start time.Time) {
	now := m.now()
	planLatency.WithLabelValues(m.mode.String()).Observe(now.Sub(start).Seconds())
	plansComputed.WithLabelValues("planned").Inc()
	if n := len(plan.Corrections); n > 0 {
		correctionsTotal.WithLabelValues(m.mode.String()).Add(float64(n))
	}
	rec := metrics.NewPlanRecord(plan, m.mode.String(), now)
	rec.CO2Price = co2Price
	if err := m.metrics.RecordPlan(rec); err != nil {
		m.logger.Errorf("metrics error: %v", err)
	}
	if m.bus != nil {
		m.bus.Publish(events.PlanEvent{Plan: plan, Entries: entries, Time: now})
	}
}

func names(units []model.Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Name
	}
	return out
}
