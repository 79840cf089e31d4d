package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/analytics/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded around every provider delivery.
type Metrics struct {
	deliveryTotal    metric.Int64Counter
	deliveryDuration metric.Float64Histogram
	deliveryErrors   metric.Int64Counter
	fanOutSize       metric.Int64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	deliveryTotal, err := meter.Int64Counter("delivery.total",
		metric.WithDescription("Provider capability calls by provider, capability and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating delivery.total counter: %w", err)
	}

	deliveryDuration, err := meter.Float64Histogram("delivery.duration",
		metric.WithDescription("Duration of provider capability calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating delivery.duration histogram: %w", err)
	}

	deliveryErrors, err := meter.Int64Counter("delivery.errors",
		metric.WithDescription("Provider capability calls that failed or panicked"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating delivery.errors counter: %w", err)
	}

	fanOutSize, err := meter.Int64Histogram("dispatch.fan_out",
		metric.WithDescription("Number of providers reached by one dispatch"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dispatch.fan_out histogram: %w", err)
	}

	return &Metrics{
		deliveryTotal:    deliveryTotal,
		deliveryDuration: deliveryDuration,
		deliveryErrors:   deliveryErrors,
		fanOutSize:       fanOutSize,
	}, nil
}

// RecordDelivery records one provider capability call.
func (m *Metrics) RecordDelivery(ctx context.Context, provider, capability, status string, duration time.Duration) {
	m.deliveryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("capability", capability),
		attribute.String("status", status),
	))
	m.deliveryDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("capability", capability),
	))
}

// RecordError records a failed provider capability call.
func (m *Metrics) RecordError(ctx context.Context, provider, capability string) {
	m.deliveryErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("capability", capability),
	))
}

// RecordFanOut records how many providers one dispatch reached.
func (m *Metrics) RecordFanOut(ctx context.Context, capability string, providers int) {
	m.fanOutSize.Record(ctx, int64(providers), metric.WithAttributes(
		attribute.String("capability", capability),
	))
}
