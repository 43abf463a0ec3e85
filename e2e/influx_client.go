package e2e

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxReader queries the points written by the service during the E2E
// suite.
type InfluxReader struct {
	bucket string
	client influxdb2.Client
	query  api.QueryAPI
}

func NewInfluxReader(url, org, bucket, token string) *InfluxReader {
	c := influxdb2.NewClient(url, token)
	return &InfluxReader{bucket: bucket, client: c, query: c.QueryAPI(org)}
}

// CountPoints returns the number of field values recorded for measurement
// during the last hour, optionally filtered on a field name.
func (r *InfluxReader) CountPoints(ctx context.Context, measurement, field string) (int, error) {
	flux := fmt.Sprintf(`from(bucket:%q) |> range(start:-1h) |> filter(fn: (r) => r._measurement == %q)`, r.bucket, measurement)
	if field != "" {
		flux += fmt.Sprintf(` |> filter(fn: (r) => r._field == %q)`, field)
	}
	res, err := r.query.Query(ctx, flux)
	if err != nil {
		return 0, err
	}
	defer res.Close()
	n := 0
	for res.Next() {
		n++
	}
	return n, res.Err()
}

func (r *InfluxReader) Close() { r.client.Close() }
