package events

import "testing"

func TestPublishDeliversInOrder(t *testing.T) {
	bus := NewInMemoryBus()

	var got []string
	bus.Subscribe(TopicCustomerAdded, func(payload any) {
		got = append(got, "first:"+payload.(string))
	})
	bus.Subscribe(TopicCustomerAdded, func(payload any) {
		got = append(got, "second:"+payload.(string))
	})

	bus.Publish(TopicCustomerAdded, "alice")

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	if got[0] != "first:alice" || got[1] != "second:alice" {
		t.Errorf("handlers ran out of order: %v", got)
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewInMemoryBus()
	// Must not panic or block.
	bus.Publish(TopicTaskAdded, 42)
}

func TestTopicsAreIndependent(t *testing.T) {
	bus := NewInMemoryBus()

	calls := 0
	bus.Subscribe(TopicTaskAdded, func(payload any) { calls++ })

	bus.Publish(TopicTaskUpdated, nil)
	bus.Publish(TopicTaskAdded, nil)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
