package collection

import (
	"fmt"

	"github.com/kbukum/listkit/event"
	"github.com/kbukum/listkit/logger"
	"github.com/kbukum/listkit/observe"
	"github.com/kbukum/listkit/util"
)

// Event is the payload delivered to collection subscribers. Continuation
// is set on the before and cancel notifications only; Item is the zero
// value on the empty and flush notifications.
type Event[T comparable] struct {
	Topic        event.Topic
	Collection   *Collection[T]
	Item         T
	Continuation *Continuation[T]
}

// Handler is a subscriber callback.
type Handler[T comparable] func(Event[T])

// Collection is an ordered in-memory container whose mutations are
// interceptable. The zero value is not usable; construct with New.
type Collection[T comparable] struct {
	items    []T
	bus      *event.Bus[Event[T]]
	views    map[string]ViewFunc[T]
	features map[string]FeatureFunc[T]
	log      *logger.Logger
	metrics  *observe.Metrics
}

// New creates an empty collection.
func New[T comparable](opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		bus:      event.NewBus[Event[T]](),
		views:    make(map[string]ViewFunc[T]),
		features: make(map[string]FeatureFunc[T]),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns a copy of the item sequence in order.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the item at index, or false when out of range.
func (c *Collection[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (c *Collection[T]) IndexOf(item T) int {
	return util.IndexOf(c.items, item)
}

// Contains reports whether item is present.
func (c *Collection[T]) Contains(item T) bool {
	return util.Contains(c.items, item)
}

// String renders the item sequence in order.
func (c *Collection[T]) String() string {
	return fmt.Sprintf("%v", c.items)
}

// --- Mutations ---

// Add appends items one at a time, each through its own pipeline.
func (c *Collection[T]) Add(items ...T) {
	for _, item := range items {
		c.beginMutation(KindAdd, item, -1)
	}
}

// AddAt inserts items starting at index, one pipeline per item. The target
// index advances after every expansion step, whether or not the step
// committed, so the items land at consecutive positions as requested. An
// index outside the sequence appends.
func (c *Collection[T]) AddAt(index int, items ...T) {
	if index < 0 {
		c.Add(items...)
		return
	}
	for i, item := range items {
		c.beginMutation(KindAdd, item, index+i)
	}
}

// AddFirst inserts items at the front of the sequence.
func (c *Collection[T]) AddFirst(items ...T) {
	c.AddAt(0, items...)
}

// RemoveAt removes the item currently at index. Out-of-range indices are a
// silent no-op.
func (c *Collection[T]) RemoveAt(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.beginMutation(KindRemove, c.items[index], index)
}

// Remove removes each given item, located by equality. Items not present
// are skipped.
func (c *Collection[T]) Remove(items ...T) {
	for _, item := range items {
		index := util.IndexOf(c.items, item)
		if index < 0 {
			continue
		}
		c.beginMutation(KindRemove, item, index)
	}
}

// RemoveFirst removes the first item.
func (c *Collection[T]) RemoveFirst() { c.RemoveAt(0) }

// RemoveLast removes the last item.
func (c *Collection[T]) RemoveLast() { c.RemoveAt(len(c.items) - 1) }

// RemoveRange removes length items starting at start. The target slots are
// snapshotted up front, then removed by identity, so a canceled removal
// shifts nothing onto its neighbours and never retargets another item.
func (c *Collection[T]) RemoveRange(start, length int) {
	if start < 0 || length <= 0 || start >= len(c.items) {
		return
	}
	end := start + length
	if end > len(c.items) {
		end = len(c.items)
	}
	targets := make([]T, end-start)
	copy(targets, c.items[start:end])

	for _, item := range targets {
		index := util.IndexOf(c.items, item)
		if index < 0 {
			continue
		}
		c.beginMutation(KindRemove, item, index)
	}
}

// Flush removes every item from the end of the sequence and fires the
// flush notification exactly once. On an already-empty collection flush
// fires immediately; otherwise it fires when the empty notification does,
// which may be after a later resume if subscribers cancel removals.
func (c *Collection[T]) Flush() {
	c.log.Debug("flush", logger.Fields(logger.FieldSize, len(c.items)))

	if len(c.items) == 0 {
		c.publish(Event[T]{Topic: event.TopicFlush, Collection: c})
		return
	}

	// One listener per Flush call: consumed by the first empty
	// notification, guaranteeing exactly one flush each.
	c.bus.SubscribeOnce(event.TopicEmpty, func(Event[T]) {
		c.publish(Event[T]{Topic: event.TopicFlush, Collection: c})
	})

	for attempts := len(c.items); attempts > 0; attempts-- {
		c.RemoveLast()
	}
}

// --- Subscriptions ---

// On registers a handler for a notification topic. It returns an
// unsubscribe function. Unknown topics fail at registration time.
func (c *Collection[T]) On(topic event.Topic, handler Handler[T]) (func(), error) {
	return c.bus.Subscribe(topic, event.Handler[Event[T]](handler))
}

// Once registers a handler delivered at most once.
func (c *Collection[T]) Once(topic event.Topic, handler Handler[T]) (func(), error) {
	return c.bus.SubscribeOnce(topic, event.Handler[Event[T]](handler))
}

func (c *Collection[T]) publish(ev Event[T]) {
	c.bus.Publish(ev.Topic, ev)
}
