package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Request latencies stay under a few seconds. Vision and embedding calls can take much longer.
var (
	httpDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	aiDurationBuckets   = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20, 30, 60, 120}
)

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(5*time.Second))),
		sdkmetric.WithView(durationView),
	)
	return provider, exporter, nil
}

// durationView sets explicit bucket boundaries on every duration histogram.
func durationView(inst sdkmetric.Instrument) (sdkmetric.Stream, bool) {
	var boundaries []float64
	switch {
	case inst.Name == "ai_call_duration_seconds":
		boundaries = aiDurationBuckets
	case strings.Contains(inst.Name, "duration"):
		boundaries = httpDurationBuckets
	default:
		return sdkmetric.Stream{}, false
	}
	return sdkmetric.Stream{
		Name:        inst.Name,
		Description: inst.Description,
		Unit:        inst.Unit,
		Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: boundaries},
	}, true
}
