package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	PipelineItems       metric.Int64Counter
	PipelineStepFailure metric.Int64Counter
	AICallDuration      metric.Float64Histogram
)

func init() {
	var err error
	// Items processed by a batch workflow, by outcome
	PipelineItems, err = meter.Int64Counter(
		"pipeline_items_total",
		metric.WithDescription("Total items processed by pipeline workflows"),
	)
	if err != nil {
		panic(err)
	}

	// Failed pipeline steps
	PipelineStepFailure, err = meter.Int64Counter(
		"pipeline_step_failures_total",
		metric.WithDescription("Total pipeline step failures"),
	)
	if err != nil {
		panic(err)
	}

	// Latency of vision and embedding calls
	AICallDuration, err = meter.Float64Histogram(
		"ai_call_duration_seconds",
		metric.WithDescription("Duration of AI model calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordPipelineItem records the outcome of one item of a batch workflow.
func RecordPipelineItem(ctx context.Context, workflow string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	PipelineItems.Add(ctx, 1, metric.WithAttributes(
		attribute.String("workflow", workflow),
		attribute.String("outcome", outcome),
	))
}

// RecordStepFailure records a failed step of a workflow.
func RecordStepFailure(ctx context.Context, workflow string, step PipelineStep) {
	PipelineStepFailure.Add(ctx, 1, metric.WithAttributes(
		attribute.String("workflow", workflow),
		attribute.String("step", string(step)),
	))
}

// RecordAICallDuration records how long an AI call that started at start took.
func RecordAICallDuration(ctx context.Context, operation string, start time.Time) {
	AICallDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
