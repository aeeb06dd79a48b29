package event

// Topic names a collection notification. The set of topics is closed:
// Subscribe rejects anything outside the catalog below.
type Topic string

const (
	// TopicAddBefore fires before an insertion commits; the payload carries
	// a continuation that may cancel it.
	TopicAddBefore Topic = "add-before"
	// TopicAdd fires when an insertion commits.
	TopicAdd Topic = "add"
	// TopicAddAfter fires immediately after TopicAdd.
	TopicAddAfter Topic = "add-after"
	// TopicAddCancel fires when a pending insertion is canceled; the payload
	// carries the continuation whose Resume replays the commit.
	TopicAddCancel Topic = "add-cancel"
	// TopicAddResume fires when a canceled insertion is resumed, before its
	// commit sequence.
	TopicAddResume Topic = "add-resume"

	// TopicRemoveBefore fires before a removal commits.
	TopicRemoveBefore Topic = "remove-before"
	// TopicRemove fires when a removal commits.
	TopicRemove Topic = "remove"
	// TopicRemoveAfter fires immediately after TopicRemove.
	TopicRemoveAfter Topic = "remove-after"
	// TopicRemoveCancel fires when a pending removal is canceled.
	TopicRemoveCancel Topic = "remove-cancel"
	// TopicRemoveResume fires when a canceled removal is resumed.
	TopicRemoveResume Topic = "remove-resume"

	// TopicEmpty fires when a removal commit leaves the collection empty.
	TopicEmpty Topic = "empty"
	// TopicFlush fires exactly once per Flush call, after its removals settle.
	TopicFlush Topic = "flush"
)

var catalog = []Topic{
	TopicAddBefore, TopicAdd, TopicAddAfter, TopicAddCancel, TopicAddResume,
	TopicRemoveBefore, TopicRemove, TopicRemoveAfter, TopicRemoveCancel, TopicRemoveResume,
	TopicEmpty, TopicFlush,
}

var catalogSet = func() map[Topic]struct{} {
	m := make(map[Topic]struct{}, len(catalog))
	for _, t := range catalog {
		m[t] = struct{}{}
	}
	return m
}()

// Valid reports whether t is part of the notification catalog.
func (t Topic) Valid() bool {
	_, ok := catalogSet[t]
	return ok
}

// String returns the topic name.
func (t Topic) String() string { return string(t) }

// Topics returns the full notification catalog in a stable order.
func Topics() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	return out
}
