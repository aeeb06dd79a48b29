package event

import (
	"testing"

	"github.com/kbukum/listkit/errors"
)

func TestSubscribeUnknownTopic(t *testing.T) {
	b := NewBus[string]()
	_, err := b.Subscribe(Topic("not-a-topic"), func(string) {})
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestSubscribeNilHandler(t *testing.T) {
	b := NewBus[string]()
	_, err := b.Subscribe(TopicAdd, nil)
	if err == nil {
		t.Fatal("expected error for nil handler")
	}
	if errors.CodeOf(err) != errors.ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %v", err)
	}
}

func TestPublishRegistrationOrder(t *testing.T) {
	b := NewBus[int]()
	var order []string
	b.Subscribe(TopicAdd, func(int) { order = append(order, "first") })
	b.Subscribe(TopicAdd, func(int) { order = append(order, "second") })
	b.Subscribe(TopicAdd, func(int) { order = append(order, "third") })

	b.Publish(TopicAdd, 1)

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery %d = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestPublishOnlyMatchingTopic(t *testing.T) {
	b := NewBus[int]()
	addCount, removeCount := 0, 0
	b.Subscribe(TopicAdd, func(int) { addCount++ })
	b.Subscribe(TopicRemove, func(int) { removeCount++ })

	b.Publish(TopicAdd, 1)

	if addCount != 1 || removeCount != 0 {
		t.Errorf("add=%d remove=%d, want 1/0", addCount, removeCount)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus[int]()
	count := 0
	unsub, err := b.Subscribe(TopicAdd, func(int) { count++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Publish(TopicAdd, 1)
	unsub()
	b.Publish(TopicAdd, 2)

	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
	if b.Count(TopicAdd) != 0 {
		t.Errorf("expected 0 live handlers, got %d", b.Count(TopicAdd))
	}
}

func TestSubscribeOnce(t *testing.T) {
	b := NewBus[int]()
	count := 0
	b.SubscribeOnce(TopicEmpty, func(int) { count++ })

	b.Publish(TopicEmpty, 1)
	b.Publish(TopicEmpty, 2)

	if count != 1 {
		t.Errorf("expected exactly 1 delivery, got %d", count)
	}
	if b.Count(TopicEmpty) != 0 {
		t.Errorf("expected once-handler removed, got %d live", b.Count(TopicEmpty))
	}
}

func TestReentrantSubscribeDuringDispatch(t *testing.T) {
	b := NewBus[int]()
	lateCount := 0
	b.Subscribe(TopicAdd, func(int) {
		b.Subscribe(TopicAdd, func(int) { lateCount++ })
	})

	b.Publish(TopicAdd, 1)
	if lateCount != 0 {
		t.Error("handler registered during dispatch must not see the in-flight payload")
	}

	b.Publish(TopicAdd, 2)
	if lateCount != 1 {
		t.Errorf("expected late handler to see next publish once, got %d", lateCount)
	}
}

func TestReentrantUnsubscribeDuringDispatch(t *testing.T) {
	b := NewBus[int]()
	var unsubSecond func()
	firstRan, secondRan := 0, 0
	b.Subscribe(TopicAdd, func(int) {
		firstRan++
		unsubSecond()
	})
	unsubSecond, _ = b.Subscribe(TopicAdd, func(int) { secondRan++ })

	b.Publish(TopicAdd, 1)

	// The snapshot taken at publish time still includes the second handler.
	if firstRan != 1 || secondRan != 1 {
		t.Errorf("first=%d second=%d, want 1/1", firstRan, secondRan)
	}

	b.Publish(TopicAdd, 2)
	if secondRan != 1 {
		t.Errorf("expected unsubscribed handler to stay silent, got %d", secondRan)
	}
}

func TestTopicsCatalog(t *testing.T) {
	all := Topics()
	if len(all) != 12 {
		t.Fatalf("expected 12 topics, got %d", len(all))
	}
	for _, topic := range all {
		if !topic.Valid() {
			t.Errorf("catalog topic %q reported invalid", topic)
		}
	}
	if Topic("nope").Valid() {
		t.Error("unknown topic reported valid")
	}
}
