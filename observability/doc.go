// Package observability wires OpenTelemetry tracing and metrics into the
// dispatcher.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("analytics"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("analytics"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("analytics"))
//	metrics.RecordDelivery(ctx, "Mixpanel", "track", "ok", duration)
//
// Setup does both from a Config and returns a single shutdown func.
package observability
