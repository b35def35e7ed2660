package events

import (
	"log"
	"sync"
)

// Topics published by the CRM service and scheduler. UI clients subscribe
// to these to refresh their views.
const (
	TopicCustomerAdded        = "customer_added"
	TopicCustomerUpdated      = "customer_updated"
	TopicCustomerDeleted      = "customer_deleted"
	TopicCommunicationAdded   = "communication_added"
	TopicCommunicationUpdated = "communication_updated"
	TopicTaskAdded            = "task_added"
	TopicTaskUpdated          = "task_updated"
	TopicReminderFired        = "reminder_fired"
)

// Bus interface
type Bus interface {
	Publish(topic string, payload any)
	Subscribe(topic string, handler func(payload any))
}

// InMemoryBus is a topic-keyed observer registry. Handlers run synchronously
// and in registration order, so a subscriber always observes the store state
// that produced the event.
type InMemoryBus struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any)
}

// NewInMemoryBus creates a new bus
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]func(payload any)),
	}
}

// Publish delivers payload to every subscriber of the topic. Publishing
// with no subscribers is a no-op.
func (b *InMemoryBus) Publish(topic string, payload any) {
	b.mu.Lock()
	handlers := make([]func(payload any), len(b.handlers[topic]))
	copy(handlers, b.handlers[topic])
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(payload)
	}
}

// Subscribe adds a handler for a topic
func (b *InMemoryBus) Subscribe(topic string, handler func(payload any)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], handler)
}

// LogSubscriber attaches a logging observer to each of the given topics.
func LogSubscriber(b Bus, topics ...string) {
	for _, topic := range topics {
		t := topic
		b.Subscribe(t, func(payload any) {
			log.Printf("event %s: %+v", t, payload)
		})
	}
}
