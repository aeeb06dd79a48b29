package collection

import (
	"github.com/google/uuid"

	"github.com/kbukum/listkit/event"
	"github.com/kbukum/listkit/logger"
	"github.com/kbukum/listkit/util"
)

// Kind identifies the type of a mutation.
type Kind int

const (
	// KindAdd inserts one item.
	KindAdd Kind = iota
	// KindRemove removes one item.
	KindRemove
)

// String returns the kind name as used in notifications and logs.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

type topicSet struct {
	before, commit, after, cancel, resume event.Topic
}

var kindTopics = map[Kind]topicSet{
	KindAdd: {
		before: event.TopicAddBefore,
		commit: event.TopicAdd,
		after:  event.TopicAddAfter,
		cancel: event.TopicAddCancel,
		resume: event.TopicAddResume,
	},
	KindRemove: {
		before: event.TopicRemoveBefore,
		commit: event.TopicRemove,
		after:  event.TopicRemoveAfter,
		cancel: event.TopicRemoveCancel,
		resume: event.TopicRemoveResume,
	},
}

func (k Kind) topics() topicSet { return kindTopics[k] }

// State is the lifecycle state of a mutation.
type State int

const (
	// StatePending means the before-notification is in flight and no
	// subscriber has canceled yet.
	StatePending State = iota
	// StateCanceled means a subscriber vetoed the mutation; it stays
	// resumable until resumed or abandoned.
	StateCanceled
	// StateCommitted is terminal: the change was applied to the sequence.
	StateCommitted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCanceled:
		return "canceled"
	case StateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// mutation tracks one pending add or remove of a single item. Its captured
// index is local to this instance, so re-entrant mutations triggered from
// subscriber handlers cannot corrupt it.
type mutation[T comparable] struct {
	id    uuid.UUID
	kind  Kind
	item  T
	index int // insertion index for add (-1 appends); lookup index for remove
	state State
	coll  *Collection[T]
}

// Continuation is the cancel/resume capability handed to subscribers of
// the before and cancel notifications. Cancel is only meaningful while the
// mutation is pending, Resume only while it is canceled; every other call
// is a no-op that returns false, so double cancels and resumes on settled
// mutations never re-fire notifications.
type Continuation[T comparable] struct {
	m *mutation[T]
}

// Kind returns the kind of the underlying mutation.
func (cn *Continuation[T]) Kind() Kind { return cn.m.kind }

// Item returns the item the underlying mutation carries.
func (cn *Continuation[T]) Item() T { return cn.m.item }

// State returns the current state of the underlying mutation.
func (cn *Continuation[T]) State() State { return cn.m.state }

// Cancel vetoes a pending mutation. The commit sequence does not run;
// instead the cancel notification fires, carrying this continuation so a
// later subscriber can resume. Returns false if the mutation is not
// pending.
func (cn *Continuation[T]) Cancel() bool {
	m := cn.m
	if m.state != StatePending {
		return false
	}
	m.state = StateCanceled

	c := m.coll
	c.log.Debug("mutation canceled", logger.Fields(
		logger.FieldMutationID, m.id.String(),
		logger.FieldKind, m.kind.String(),
	))
	c.metrics.RecordCancel(m.kind.String())
	c.publish(Event[T]{
		Topic:        m.kind.topics().cancel,
		Collection:   c,
		Item:         m.item,
		Continuation: cn,
	})
	return true
}

// Resume replays a canceled mutation: the resume notification fires first,
// then the full commit sequence runs exactly as it would have without the
// cancellation. Safe to call synchronously from inside the cancel handler
// or at any later point. Returns false if the mutation is not canceled.
func (cn *Continuation[T]) Resume() bool {
	m := cn.m
	if m.state != StateCanceled {
		return false
	}

	c := m.coll
	c.log.Debug("mutation resumed", logger.Fields(
		logger.FieldMutationID, m.id.String(),
		logger.FieldKind, m.kind.String(),
	))
	c.metrics.RecordResume(m.kind.String())
	c.publish(Event[T]{
		Topic:      m.kind.topics().resume,
		Collection: c,
		Item:       m.item,
	})
	m.commit()
	return true
}

// beginMutation runs the pipeline for a single item: construct the pending
// mutation, fire the before-notification, and commit unless a subscriber
// canceled during dispatch.
func (c *Collection[T]) beginMutation(kind Kind, item T, index int) *mutation[T] {
	m := &mutation[T]{
		id:    uuid.New(),
		kind:  kind,
		item:  item,
		index: index,
		state: StatePending,
		coll:  c,
	}

	c.log.Debug("mutation begin", logger.Fields(
		logger.FieldMutationID, m.id.String(),
		logger.FieldKind, kind.String(),
		logger.FieldIndex, index,
	))

	c.publish(Event[T]{
		Topic:        kind.topics().before,
		Collection:   c,
		Item:         item,
		Continuation: &Continuation[T]{m: m},
	})

	// Subscribers run to completion before publish returns, so a
	// cancellation is visible here.
	if m.state == StatePending {
		m.commit()
	}
	return m
}

// commit applies the mutation to the sequence and fires the commit, after
// and (for an emptying removal) empty notifications.
func (m *mutation[T]) commit() {
	c := m.coll
	topics := m.kind.topics()
	m.state = StateCommitted

	var sizeDelta int64
	switch m.kind {
	case KindAdd:
		c.items = util.Insert(c.items, m.index, m.item)
		sizeDelta = 1
	case KindRemove:
		idx := m.index
		if idx < 0 || idx >= len(c.items) || c.items[idx] != m.item {
			// The captured index went stale (a subscriber mutated the
			// sequence during the before-notification, or the mutation was
			// resumed much later). Re-resolve by equality.
			idx = util.IndexOf(c.items, m.item)
		}
		if idx < 0 {
			// The item left the sequence while the mutation was parked.
			// The removal settles without a commit notification.
			c.log.Warn("remove target no longer present, dropping mutation", logger.Fields(
				logger.FieldMutationID, m.id.String(),
			))
			return
		}
		c.items = util.RemoveAt(c.items, idx)
		sizeDelta = -1
	}

	c.metrics.RecordCommit(m.kind.String(), sizeDelta)
	c.log.Debug("mutation committed", logger.Fields(
		logger.FieldMutationID, m.id.String(),
		logger.FieldKind, m.kind.String(),
		logger.FieldSize, len(c.items),
	))

	c.publish(Event[T]{Topic: topics.commit, Collection: c, Item: m.item})
	c.publish(Event[T]{Topic: topics.after, Collection: c, Item: m.item})

	if m.kind == KindRemove && len(c.items) == 0 {
		c.publish(Event[T]{Topic: event.TopicEmpty, Collection: c})
	}
}
