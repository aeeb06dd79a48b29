package collection

import (
	"github.com/kbukum/listkit/logger"
	"github.com/kbukum/listkit/observe"
)

// Option configures a Collection at construction time.
type Option[T comparable] func(*Collection[T])

// WithLogger attaches a logger; the collection tags it with its component
// name and logs the mutation pipeline at debug level.
func WithLogger[T comparable](l *logger.Logger) Option[T] {
	return func(c *Collection[T]) {
		if l != nil {
			c.log = l.WithComponent("collection")
		}
	}
}

// WithMetrics attaches metric instruments for mutation outcomes.
func WithMetrics[T comparable](m *observe.Metrics) Option[T] {
	return func(c *Collection[T]) {
		c.metrics = m
	}
}

// WithItems seeds the collection. Seeding bypasses the mutation pipeline:
// no notifications fire for the initial items.
func WithItems[T comparable](items ...T) Option[T] {
	return func(c *Collection[T]) {
		c.items = append(c.items, items...)
	}
}
