package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the metric instruments for collection mutations.
type Metrics struct {
	mutationTotal metric.Int64Counter
	cancelTotal   metric.Int64Counter
	resumeTotal   metric.Int64Counter
	size          metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	mutationTotal, err := meter.Int64Counter("collection.mutation.total",
		metric.WithDescription("Total number of committed mutations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collection.mutation.total counter: %w", err)
	}

	cancelTotal, err := meter.Int64Counter("collection.cancel.total",
		metric.WithDescription("Total number of canceled mutations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collection.cancel.total counter: %w", err)
	}

	resumeTotal, err := meter.Int64Counter("collection.resume.total",
		metric.WithDescription("Total number of resumed mutations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collection.resume.total counter: %w", err)
	}

	size, err := meter.Int64UpDownCounter("collection.size",
		metric.WithDescription("Current number of items across collections"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collection.size counter: %w", err)
	}

	return &Metrics{
		mutationTotal: mutationTotal,
		cancelTotal:   cancelTotal,
		resumeTotal:   resumeTotal,
		size:          size,
	}, nil
}

// RecordCommit counts a committed mutation and adjusts the size counter.
// sizeDelta is +1 for an insertion, -1 for a removal, 0 for a no-op commit.
func (m *Metrics) RecordCommit(kind string, sizeDelta int64) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.mutationTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	if sizeDelta != 0 {
		m.size.Add(ctx, sizeDelta)
	}
}

// RecordCancel counts a canceled mutation.
func (m *Metrics) RecordCancel(kind string) {
	if m == nil {
		return
	}
	m.cancelTotal.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordResume counts a resumed mutation.
func (m *Metrics) RecordResume(kind string) {
	if m == nil {
		return
	}
	m.resumeTotal.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}
