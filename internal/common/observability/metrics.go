package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	taskCounter   otelmetric.Int64Counter
	taskDuration  otelmetric.Float64Histogram
}

// New builds the meter provider with a Prometheus reader. When disabled
// (managed runtime, K_SERVICE) it returns an inert instance whose record
// methods are no-ops.
func New(serviceName string, disabled bool) *Observability {
	if disabled {
		return &Observability{}
	}

	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	taskCounter, _ := meter.Int64Counter(
		"tasks.executed",
		otelmetric.WithDescription("Number of pipeline tasks executed"),
	)

	taskDuration, _ := meter.Float64Histogram(
		"tasks.duration",
		otelmetric.WithDescription("Task execution duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		taskCounter:   taskCounter,
		taskDuration:  taskDuration,
	}
}

func (o *Observability) RecordTaskExecuted(ctx context.Context, taskName, status string) {
	if o.taskCounter != nil {
		o.taskCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("task", taskName),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordTaskDuration(ctx context.Context, taskName string, duration time.Duration) {
	if o.taskDuration != nil {
		o.taskDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("task", taskName),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
