// Package observable provides a minimal published-value abstraction:
// a holder of a current value that replays it to new subscribers and
// dispatches every write synchronously, in subscription order.
package observable

import "sync"

// Value holds a current value of type T and notifies subscribers on
// every write. Writes are expected to come from one logical timeline;
// the internal mutex only protects the value and subscriber list, it
// does not order concurrent writers.
type Value[T any] struct {
	mu       sync.Mutex
	current  T
	nextID   int
	handlers []subscriber[T]
}

type subscriber[T any] struct {
	id      int
	handler func(T)
}

// Subscription identifies one registered handler.
type Subscription[T any] struct {
	value *Value[T]
	id    int
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set stores value and synchronously invokes every subscribed handler
// with it, in subscription order. There is no deduplication: setting the
// same value twice fires handlers twice.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.current = value
	handlers := make([]func(T), len(v.handlers))
	for i, sub := range v.handlers {
		handlers[i] = sub.handler
	}
	v.mu.Unlock()

	for _, handler := range handlers {
		handler(value)
	}
}

// Subscribe registers handler and immediately invokes it once with the
// current value, then keeps it for future writes.
func (v *Value[T]) Subscribe(handler func(T)) *Subscription[T] {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.handlers = append(v.handlers, subscriber[T]{id: id, handler: handler})
	current := v.current
	v.mu.Unlock()

	handler(current)
	return &Subscription[T]{value: v, id: id}
}

// Cancel removes the handler. Safe to call more than once.
func (s *Subscription[T]) Cancel() {
	if s == nil || s.value == nil {
		return
	}
	v := s.value
	v.mu.Lock()
	for i, sub := range v.handlers {
		if sub.id == s.id {
			v.handlers = append(v.handlers[:i], v.handlers[i+1:]...)
			break
		}
	}
	v.mu.Unlock()
	s.value = nil
}
