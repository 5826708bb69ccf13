package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMetrics sets the global meter provider. With export true, readings are
// pushed over OTLP; otherwise a plain SDK provider is installed so instrument
// creation still succeeds everywhere without a collector.
func InitMetrics(ctx context.Context, export bool) (func(context.Context) error, error) {
	if !export {
		provider := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider.Shutdown, nil
	}

	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter),
		),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
