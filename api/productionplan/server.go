package productionplan

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kilianp07/productionplan/infra/logger"
)

// DefaultAddress is the listen address used when none is configured.
const DefaultAddress = ":8888"

// Config defines the HTTP server settings.
type Config struct {
	Address             string `json:"address" yaml:"address"`
	ReadTimeoutSeconds  int    `json:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `json:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.ReadTimeoutSeconds <= 0 {
		c.ReadTimeoutSeconds = 10
	}
	if c.WriteTimeoutSeconds <= 0 {
		c.WriteTimeoutSeconds = 10
	}
}

// Server exposes the production plan endpoint, a health check and the
// Prometheus metrics.
type Server struct {
	cfg      Config
	mu       sync.RWMutex
	addr     string
	planner  Planner
	log      logger.Logger
	srv      *http.Server
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewServer creates a server registering its metrics on the default
// Prometheus registry.
func NewServer(cfg Config, p Planner) *Server {
	return NewServerWithRegistry(cfg, p, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewServerWithRegistry creates a server and registers metrics on the
// provided registerer. /metrics serves gath.
func NewServerWithRegistry(cfg Config, p Planner, reg prometheus.Registerer, gath prometheus.Gatherer) *Server {
	cfg.SetDefaults()
	log := logger.New("http-server")

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "productionplan_http_requests_total",
		Help: "HTTP requests to the production plan endpoint",
	}, []string{"code", "method"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "productionplan_http_request_duration_seconds",
		Help:    "Latency of the production plan endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"code"})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if exist, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				requests = exist
			}
		} else {
			log.Errorf("register request counter: %v", err)
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if exist, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				duration = exist
			}
		} else {
			log.Errorf("register request histogram: %v", err)
		}
	}

	return &Server{
		cfg:      cfg,
		addr:     cfg.Address,
		planner:  p,
		log:      log,
		gatherer: gath,
		requests: requests,
		duration: duration,
	}
}

// Handler returns the routes served by the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	plan := NewHandler(s.planner, s.log)
	mux.Handle("/productionplan", promhttp.InstrumentHandlerDuration(s.duration,
		promhttp.InstrumentHandlerCounter(s.requests, plan)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			s.log.Errorf("write health: %v", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Addr returns the listening address once Start has been called.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	s.srv = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("shutdown server: %v", err)
		}
		cancel()
	}()
	s.log.Infof("production plan server listening on %s", ln.Addr())
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
