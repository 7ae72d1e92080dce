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

	"github.com/kbukum/authkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
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
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig, log *logger.Logger) (*sdkmetric.MeterProvider, error) {
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

	if log != nil {
		log.Info("meter initialized", logger.Fields(
			"service", config.ServiceName,
			"endpoint", config.Endpoint,
			"interval", config.Interval.String(),
		))
	}

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// AuthMetrics holds metric instruments for the authentication pipeline.
type AuthMetrics struct {
	outcomeTotal metric.Int64Counter
	authDuration metric.Float64Histogram
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	errorTotal   metric.Int64Counter
}

// NewAuthMetrics creates the authentication instruments on the given meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	outcomeTotal, err := meter.Int64Counter("auth.outcome.total",
		metric.WithDescription("Authentication attempts by scheme and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.outcome.total counter: %w", err)
	}

	authDuration, err := meter.Float64Histogram("auth.duration",
		metric.WithDescription("Duration of authentication attempts in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.duration histogram: %w", err)
	}

	cacheHits, err := meter.Int64Counter("auth.cache.hits",
		metric.WithDescription("Credential cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.cache.hits counter: %w", err)
	}

	cacheMisses, err := meter.Int64Counter("auth.cache.misses",
		metric.WithDescription("Credential cache misses, including stale entries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.cache.misses counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("auth.error.total",
		metric.WithDescription("Errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.error.total counter: %w", err)
	}

	return &AuthMetrics{
		outcomeTotal: outcomeTotal,
		authDuration: authDuration,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
		errorTotal:   errorTotal,
	}, nil
}

// RecordOutcome records a completed authentication attempt.
func (m *AuthMetrics) RecordOutcome(ctx context.Context, scheme, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("scheme", scheme),
		attribute.String("outcome", outcome),
	)
	m.outcomeTotal.Add(ctx, 1, attrs)
	m.authDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("scheme", scheme),
	))
}

// RecordCacheHit records a credential cache hit.
func (m *AuthMetrics) RecordCacheHit(ctx context.Context, scheme string) {
	m.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("scheme", scheme)))
}

// RecordCacheMiss records a credential cache miss.
func (m *AuthMetrics) RecordCacheMiss(ctx context.Context, scheme string) {
	m.cacheMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("scheme", scheme)))
}

// RecordError records an error by type and component.
func (m *AuthMetrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
