package events

import (
	"sync"
	"time"
)

//go:generate mockgen -source=notifier.go -destination=../mock/notifier_mock.go -package=mock

// Handler receives published events. Handlers are invoked synchronously on
// the publisher's goroutine and must not block.
type Handler func(Event)

// Notifier is the event channel between client components.
type Notifier interface {
	// Publish delivers ev to all handlers subscribed to ev.Type. The At
	// field is stamped with the current time if the caller left it zero.
	Publish(ev Event)

	// Subscribe registers h for subsequent events of type t and returns a
	// function that removes the subscription. Unsubscribing twice is safe.
	Subscribe(t EventType, h Handler) (unsubscribe func())
}

type subscription struct {
	eventType EventType
	handler   Handler
}

type bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscription
}

// NewBus returns an in-process [Notifier]. Delivery is synchronous and in no
// guaranteed order across subscribers.
func NewBus() Notifier {
	return &bus{subs: make(map[int]subscription)}
}

func (b *bus) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.eventType == ev.Type {
			handlers = append(handlers, s.handler)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

func (b *bus) Subscribe(t EventType, h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscription{eventType: t, handler: h}
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

type nopNotifier struct{}

// NewNop returns a [Notifier] that drops every event and never delivers
// anything. Useful in tests and in wiring paths that have no subscribers.
func NewNop() Notifier { return nopNotifier{} }

func (nopNotifier) Publish(Event)                        {}
func (nopNotifier) Subscribe(EventType, Handler) func() { return func() {} }
