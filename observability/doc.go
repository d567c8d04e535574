// Package observability provides OpenTelemetry tracing and metrics
// integration.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("pushd"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanStreamSubscribe)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("pushd"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := sse.NewMetrics(observability.Meter("ssekit/sse"))
package observability
