// Package event provides the publish/subscribe bus connecting the
// command handlers to observers such as the highlight renderer and the
// host frontend.
package event

import "sync"

// Topic identifies an event stream using dot notation, e.g.
// "search.state.changed".
type Topic string

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Event carries a published payload with its topic.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives published events.
type Handler func(e Event)

// Bus is a synchronous publish/subscribe hub. Delivery runs on the
// publisher's goroutine in subscription order, which keeps observers
// such as highlight recomputation demand-driven with no background
// work.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic][]subscription
}

type subscription struct {
	id int
	fn Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers fn for events published on topic and returns a
// function that removes the subscription.
func (b *Bus) Subscribe(topic Topic, fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[topic]
		for i, s := range subs {
			if s.id == id {
				b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every subscriber of its topic. The handler
// slice is copied first, so handlers may subscribe or unsubscribe
// during delivery.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[e.Topic]))
	copy(subs, b.subs[e.Topic])
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(e)
	}
}

// SubscriberCount returns the number of subscriptions on topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
