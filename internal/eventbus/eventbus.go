// Package eventbus fans plan lifecycle events out to in-process subscribers.
package eventbus

import (
	"sync"
	"sync/atomic"
)

// DefaultBuffer is the channel capacity of a subscriber.
const DefaultBuffer = 16

// Event is any value published on the bus.
type Event interface{}

// EventBus is a non-blocking publish/subscribe bus.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// Option configures a Bus.
type Option func(*Bus)

// WithBuffer sets the subscriber channel capacity.
func WithBuffer(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.buffer = n
		}
	}
}

// Bus delivers each event to every subscriber whose channel has room. Events
// for a full subscriber are dropped and counted.
type Bus struct {
	mu      sync.RWMutex
	subs    map[<-chan Event]chan Event
	buffer  int
	closed  bool
	dropped atomic.Uint64
}

func New(opts ...Option) *Bus {
	b := &Bus{subs: make(map[<-chan Event]chan Event), buffer: DefaultBuffer}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe returns a new subscription. Subscribing to a closed bus returns
// a closed channel.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, b.buffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = ch
	return ch
}

// Unsubscribe closes the subscription. Unknown channels are ignored.
func (b *Bus) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(ch)
	}
}

// Close closes every subscription; later publications are discarded.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub, ch := range b.subs {
		close(ch)
		delete(b.subs, sub)
	}
}

// Dropped returns the number of deliveries skipped because a subscriber was
// full.
func (b *Bus) Dropped() uint64 { return b.dropped.Load() }
