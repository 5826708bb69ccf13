package web

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	historyGauge metric.Int64Gauge
)

// InitMetrics registers the OTel metric instruments for the calculator form.
// Call once at startup, after the meter provider is installed.
func InitMetrics() error {
	meter := otel.Meter("calc.web")

	var err error

	opsCounter, err = meter.Int64Counter("calc.operations.total",
		metric.WithDescription("Total number of calculations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calc.operation.duration",
		metric.WithDescription("Duration of calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calc.errors.total",
		metric.WithDescription("Total number of failed calculation attempts"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	historyGauge, err = meter.Int64Gauge("calc.history.length",
		metric.WithDescription("Number of records in the calculation history"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return fmt.Errorf("creating history gauge: %w", err)
	}

	return nil
}
