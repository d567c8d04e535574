package sse

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OpenTelemetry instruments for SSE delivery observability.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	connectionsActive metric.Int64UpDownCounter
	eventsDelivered   metric.Int64Counter
	sendFailures      metric.Int64Counter
	broadcastsTotal   metric.Int64Counter
}

// NewMetrics creates the SSE instrument set on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	connectionsActive, err := meter.Int64UpDownCounter("sse.connections.active",
		metric.WithDescription("Number of currently registered SSE connections"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sse.connections.active counter: %w", err)
	}

	eventsDelivered, err := meter.Int64Counter("sse.events.delivered",
		metric.WithDescription("Total number of event frames delivered to peers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sse.events.delivered counter: %w", err)
	}

	sendFailures, err := meter.Int64Counter("sse.send.failures",
		metric.WithDescription("Total number of failed sends (connections dropped)"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sse.send.failures counter: %w", err)
	}

	broadcastsTotal, err := meter.Int64Counter("sse.broadcasts.total",
		metric.WithDescription("Total number of broadcast operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sse.broadcasts.total counter: %w", err)
	}

	return &Metrics{
		connectionsActive: connectionsActive,
		eventsDelivered:   eventsDelivered,
		sendFailures:      sendFailures,
		broadcastsTotal:   broadcastsTotal,
	}, nil
}

func (m *Metrics) connOpened(ctx context.Context) {
	if m == nil {
		return
	}
	m.connectionsActive.Add(ctx, 1)
}

func (m *Metrics) connClosed(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.connectionsActive.Add(ctx, -n)
}

func (m *Metrics) delivered(ctx context.Context) {
	if m == nil {
		return
	}
	m.eventsDelivered.Add(ctx, 1)
}

func (m *Metrics) sendFailed(ctx context.Context) {
	if m == nil {
		return
	}
	m.sendFailures.Add(ctx, 1)
}

func (m *Metrics) broadcast(ctx context.Context) {
	if m == nil {
		return
	}
	m.broadcastsTotal.Add(ctx, 1)
}
