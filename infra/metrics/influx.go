package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/productionplan/core/metrics"
	"github.com/kilianp07/productionplan/infra/logger"
)

// InfluxSink writes production plans to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlan writes one production_plan point and one unit_allocation point
// per unit, in a single request.
func (s *InfluxSink) RecordPlan(rec coremetrics.PlanRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	points := make([]*write.Point, 0, len(rec.Units)+1)
	points = append(points, write.NewPointWithMeasurement("production_plan").
		AddTag("plan_id", rec.PlanID).
		AddTag("correction", rec.Mode).
		AddField("load_mw", round3(rec.Load)).
		AddField("committed_mw", round3(rec.Committed)).
		AddField("unserved_mw", round3(rec.Unserved)).
		AddField("excess_mw", round3(rec.Excess)).
		AddField("corrections", rec.Corrections).
		AddField("co2_t_per_h", round3(rec.Emissions())).
		SetTime(rec.Time))
	for _, u := range rec.Units {
		p := write.NewPointWithMeasurement("unit_allocation").
			AddTag("plan_id", rec.PlanID).
			AddTag("unit", u.Name).
			AddTag("kind", u.Kind).
			AddField("output_mw", round3(u.Output)).
			AddField("running", u.Output != 0)
		if u.CostKnown {
			p = p.AddField("marginal_cost", round3(u.Cost))
		}
		points = append(points, p.SetTime(rec.Time))
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// RecordReject writes a plan_rejected point.
func (s *InfluxSink) RecordReject(rec coremetrics.RejectRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_rejected").
		AddTag("component", "plan_manager").
		AddField("reason", rec.Reason).
		SetTime(rec.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
