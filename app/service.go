package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/productionplan/api/productionplan"
	"github.com/kilianp07/productionplan/config"
	"github.com/kilianp07/productionplan/core/dispatch"
	"github.com/kilianp07/productionplan/core/events"
	coremetrics "github.com/kilianp07/productionplan/core/metrics"
	coremon "github.com/kilianp07/productionplan/core/monitoring"
	"github.com/kilianp07/productionplan/core/publish"
	"github.com/kilianp07/productionplan/infra/logger"
	_ "github.com/kilianp07/productionplan/infra/metrics" // registers sink factories
	"github.com/kilianp07/productionplan/infra/monitoring"
	"github.com/kilianp07/productionplan/infra/mqtt"
	"github.com/kilianp07/productionplan/internal/eventbus"
)

// Service wires the plan manager behind the HTTP server.
type Service struct {
	Manager *dispatch.Manager
	Server  *productionplan.Server
	bus     *eventbus.Bus
	pub     *mqtt.PahoPublisher
	sink    coremetrics.MetricsSink
	flush   time.Duration
	log     logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Configure(cfg.Logging.Options()); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	coremon.Init(mon)

	sink, err := cfg.Metrics.Build()
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	var (
		pub     publish.Publisher
		pahoPub *mqtt.PahoPublisher
	)
	if cfg.MQTT.Enabled {
		pahoPub, err = mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		pub = pahoPub
	}

	bus := eventbus.New()
	manager, err := dispatch.NewManager(cfg.Dispatch, logger.New("plan_manager"), sink, pub, bus)
	if err != nil {
		return nil, fmt.Errorf("plan manager: %w", err)
	}
	return &Service{
		Manager: manager,
		Server:  productionplan.NewServer(cfg.Server, manager),
		bus:     bus,
		pub:     pahoPub,
		sink:    sink,
		flush:   time.Duration(cfg.Sentry.FlushTimeoutMS) * time.Millisecond,
		log:     logg,
	}, nil
}

// Run serves requests and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	sub := s.bus.Subscribe()
	go s.audit(sub)
	defer s.bus.Unsubscribe(sub)
	s.log.Infof("correction mode %s", s.Manager.Mode())
	return s.Server.Start(ctx)
}

// audit logs the plan lifecycle events until the subscription is closed.
func (s *Service) audit(sub <-chan eventbus.Event) {
	defer coremon.Recover()
	for ev := range sub {
		switch e := ev.(type) {
		case events.PlanEvent:
			s.log.Debugw("plan event", map[string]any{
				"plan_id": e.Plan.ID,
				"units":   len(e.Entries),
				"time":    e.Time.Format(time.RFC3339),
			})
		case events.RejectEvent:
			s.log.Debugw("reject event", map[string]any{
				"reason": e.Reason,
				"time":   e.Time.Format(time.RFC3339),
			})
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Disconnect()
	}
	closeSink(s.sink)
	s.bus.Close()
	coremon.Flush(s.flush)
	return logger.Close()
}

func closeSink(sink coremetrics.MetricsSink) {
	switch v := sink.(type) {
	case *coremetrics.MultiSink:
		for _, s := range v.Sinks {
			closeSink(s)
		}
	case interface{ Close() }:
		v.Close()
	}
}
