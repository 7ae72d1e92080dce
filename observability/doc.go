// Package observability provides OpenTelemetry tracing and metrics for
// authentication flows.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"), log)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanAuthenticate)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"), log)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewAuthMetrics(observability.Meter("my-service"))
//	metrics.RecordOutcome(ctx, "JWT", "success", duration)
//
// Health checks:
//
//	health := observability.NewServiceHealth("my-service", "1.0.0")
//	health.AddComponent(store.CheckHealth(ctx))
package observability
