package event

import (
	"fmt"
	"sync"

	"github.com/kbukum/listkit/errors"
)

// Handler is a callback for a published payload.
type Handler[P any] func(P)

type subscription[P any] struct {
	id      int
	handler Handler[P]
	once    bool
	fired   bool
}

// Bus delivers payloads to handlers registered per topic. Handlers run
// synchronously in registration order; the bookkeeping lock is released
// before any handler runs, so handlers may call back into the bus.
type Bus[P any] struct {
	mu     sync.Mutex
	subs   map[Topic][]*subscription[P]
	nextID int
}

// NewBus creates an empty bus.
func NewBus[P any]() *Bus[P] {
	return &Bus[P]{
		subs: make(map[Topic][]*subscription[P]),
	}
}

// Subscribe registers a handler for a topic and returns an unsubscribe
// function. Unknown topics and nil handlers are registration errors.
func (b *Bus[P]) Subscribe(t Topic, h Handler[P]) (func(), error) {
	return b.subscribe(t, h, false)
}

// SubscribeOnce registers a handler delivered at most once, then removed.
func (b *Bus[P]) SubscribeOnce(t Topic, h Handler[P]) (func(), error) {
	return b.subscribe(t, h, true)
}

func (b *Bus[P]) subscribe(t Topic, h Handler[P], once bool) (func(), error) {
	if !t.Valid() {
		return nil, errors.InvalidInput("topic", fmt.Sprintf("unknown notification %q", t))
	}
	if h == nil {
		return nil, errors.MissingField("handler")
	}

	b.mu.Lock()
	b.nextID++
	sub := &subscription[P]{id: b.nextID, handler: h, once: once}
	b.subs[t] = append(b.subs[t], sub)
	b.mu.Unlock()

	return func() { b.remove(t, sub.id) }, nil
}

// Publish delivers the payload to every handler registered for the topic,
// in registration order, before returning. Handlers registered during
// dispatch do not receive the in-flight payload.
func (b *Bus[P]) Publish(t Topic, payload P) {
	b.mu.Lock()
	snapshot := make([]*subscription[P], len(b.subs[t]))
	copy(snapshot, b.subs[t])
	b.mu.Unlock()

	for _, sub := range snapshot {
		if sub.once && !b.claimOnce(t, sub) {
			continue
		}
		sub.handler(payload)
	}
}

// Count returns the number of live handlers for a topic.
func (b *Bus[P]) Count(t Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[t])
}

// claimOnce marks a once-subscription as fired and removes it. Returns
// false if another dispatch already claimed it.
func (b *Bus[P]) claimOnce(t Topic, sub *subscription[P]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub.fired {
		return false
	}
	sub.fired = true
	b.removeLocked(t, sub.id)
	return true
}

func (b *Bus[P]) remove(t Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(t, id)
}

func (b *Bus[P]) removeLocked(t Topic, id int) {
	subs := b.subs[t]
	for i, sub := range subs {
		if sub.id == id {
			b.subs[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
