package metrics

import (
	coremetrics "github.com/kilianp07/productionplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink exposes the latest plan and plan counters as Prometheus metrics.
type PromSink struct {
	plans    *prometheus.CounterVec
	rejects  prometheus.Counter
	totals   *prometheus.GaugeVec
	output   *prometheus.GaugeVec
	cost     *prometheus.GaugeVec
	emission prometheus.Gauge
	share    prometheus.Gauge
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	s, err := NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var (
		s   PromSink
		err error
	)
	if s.plans, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "productionplan_plans_total",
		Help: "Total number of computed plans",
	}, []string{"correction"})); err != nil {
		return nil, err
	}
	if s.rejects, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "productionplan_rejects_total",
		Help: "Total number of rejected plan requests",
	})); err != nil {
		return nil, err
	}
	if s.totals, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "productionplan_last_plan_mw",
		Help: "Load, committed, unserved and excess power of the last plan",
	}, []string{"quantity"})); err != nil {
		return nil, err
	}
	if s.output, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "productionplan_unit_output_mw",
		Help: "Output assigned to each unit in the last plan",
	}, []string{"unit", "kind"})); err != nil {
		return nil, err
	}
	if s.cost, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "productionplan_unit_marginal_cost",
		Help: "Marginal cost in euro/MWh used to rank each unit in the last plan",
	}, []string{"unit", "kind"})); err != nil {
		return nil, err
	}
	if s.emission, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "productionplan_co2_tonnes_per_hour",
		Help: "Estimated CO2 emissions of the last plan",
	})); err != nil {
		return nil, err
	}
	if s.share, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "productionplan_renewable_share_ratio",
		Help: "Share of the last plan produced by wind units",
	})); err != nil {
		return nil, err
	}
	return &s, nil
}

// RecordPlan updates the counters and replaces the last-plan gauges.
func (s *PromSink) RecordPlan(rec coremetrics.PlanRecord) error {
	s.plans.WithLabelValues(rec.Mode).Inc()
	s.totals.WithLabelValues("load").Set(rec.Load)
	s.totals.WithLabelValues("committed").Set(rec.Committed)
	s.totals.WithLabelValues("unserved").Set(rec.Unserved)
	s.totals.WithLabelValues("excess").Set(rec.Excess)
	s.output.Reset()
	s.cost.Reset()
	for _, u := range rec.Units {
		s.output.WithLabelValues(u.Name, u.Kind).Set(u.Output)
		if u.CostKnown {
			s.cost.WithLabelValues(u.Name, u.Kind).Set(u.Cost)
		}
	}
	s.emission.Set(rec.Emissions())
	s.share.Set(rec.RenewableShare())
	return nil
}

// RecordReject increments the rejected requests counter.
func (s *PromSink) RecordReject(coremetrics.RejectRecord) error {
	s.rejects.Inc()
	return nil
}
