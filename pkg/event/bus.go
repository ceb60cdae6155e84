package event

import (
	"fmt"
	"sync"
)

// Subscriber receives a value published under a name.
type Subscriber func(value any)

type subscription struct {
	id      uint64
	fn      Subscriber
	filters []Filter
	once    bool
}

// Bus delivers named values to their registered subscribers, in
// registration order, running each subscriber's filter chain first.
type Bus struct {
	mu     sync.Mutex
	subs   map[string][]*subscription
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]*subscription)}
}

// Subscribe registers fn to receive every value published under name that
// survives filters, applied in the order given. It returns an ID that can
// be passed to Unsubscribe.
func (b *Bus) Subscribe(name string, fn Subscriber, filters ...Filter) uint64 {
	return b.add(name, fn, filters, false)
}

// SubscribeOnce registers fn to receive the next value published under
// name that survives filters, then automatically unsubscribes.
func (b *Bus) SubscribeOnce(name string, fn Subscriber, filters ...Filter) uint64 {
	return b.add(name, fn, filters, true)
}

func (b *Bus) add(name string, fn Subscriber, filters []Filter, once bool) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], &subscription{
		id:      id,
		fn:      fn,
		filters: filters,
		once:    once,
	})
	return id
}

// Unsubscribe removes the subscription with the given ID from name.
// Returns false if no such subscription exists.
func (b *Bus) Unsubscribe(name string, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[name]
	for i, sub := range list {
		if sub.id == id {
			b.subs[name] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of active subscriptions on name.
func (b *Bus) Count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[name])
}

// Publish delivers value to every subscriber of name whose filter chain
// lets it through, in registration order. A panicking subscriber is
// recovered and does not stop delivery to the rest.
func (b *Bus) Publish(name string, value any) {
	b.mu.Lock()
	list := append([]*subscription(nil), b.subs[name]...)
	b.mu.Unlock()

	var toRemove []uint64
	for _, sub := range list {
		out := value
		passed := true
		for _, f := range sub.filters {
			out, passed = f(out)
			if !passed {
				break
			}
		}
		if !passed {
			continue
		}

		b.deliver(sub, out)
		if sub.once {
			toRemove = append(toRemove, sub.id)
		}
	}

	if len(toRemove) > 0 {
		b.mu.Lock()
		for _, id := range toRemove {
			list := b.subs[name]
			for i, sub := range list {
				if sub.id == id {
					b.subs[name] = append(list[:i], list[i+1:]...)
					break
				}
			}
		}
		b.mu.Unlock()
	}
}

func (b *Bus) deliver(sub *subscription, value any) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("event: subscriber panic recovered: %v\n", r)
		}
	}()
	sub.fn(value)
}
