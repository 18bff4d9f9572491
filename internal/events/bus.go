// Package events provides a synchronous typed publish/subscribe bus used to
// decouple the simulation systems from their observers (UI, audio, score).
// Publishers do not know who, if anyone, is listening. There is no global
// instance: a Bus is constructed once and passed by reference.
package events

import "reflect"

type handler struct {
	id int
	fn any // func(T) for the subscribed event type
}

// Bus dispatches events to subscribers of the event's Go type. Dispatch is
// synchronous and immediate: Publish returns only after every subscriber
// has run. There is no ordering guarantee across subscribers of the same
// event. Handlers must not publish the event type that triggered them.
type Bus struct {
	handlers map[reflect.Type][]handler
	nextID   int
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]handler)}
}

// Subscribe registers fn to be called for every published event of type T.
// It returns a disposer that removes the subscription; calling it more than
// once is harmless.
func Subscribe[T any](b *Bus, fn func(T)) func() {
	t := reflect.TypeFor[T]()
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], handler{id: id, fn: fn})

	return func() {
		hs := b.handlers[t]
		for i, h := range hs {
			if h.id == id {
				b.handlers[t] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to all current subscribers of type T. The handler
// list is captured before dispatch, so a handler that subscribes or
// disposes during delivery does not affect this dispatch.
func Publish[T any](b *Bus, ev T) {
	hs := b.handlers[reflect.TypeFor[T]()]
	for _, h := range hs {
		h.fn.(func(T))(ev)
	}
}
