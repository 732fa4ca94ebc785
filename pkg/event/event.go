// Package event implements typed Pub-Sub using channel.
package event

import (
	"errors"
	"sync"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrClosed        = errors.New("emitter is closed")
)

// Emitter delivers messages of type T to the subscribers of a topic.
// Publish blocks until every subscriber channel accepted the message.
type Emitter[T any] struct {
	events  map[string][]chan T
	closed  bool
	rwMutex *sync.RWMutex
}

func New[T any]() *Emitter[T] {
	return &Emitter[T]{
		events:  make(map[string][]chan T),
		rwMutex: &sync.RWMutex{},
	}
}

// On registers out as a subscriber of event.
func (ee *Emitter[T]) On(event string, out chan T) error {
	ee.rwMutex.Lock()
	defer ee.rwMutex.Unlock()
	if ee.closed {
		return ErrClosed
	}
	ee.events[event] = append(ee.events[event], out)
	return nil
}

// Subscribe returns a new channel with the given buffer size subscribed to event.
func (ee *Emitter[T]) Subscribe(event string, size int) (<-chan T, error) {
	out := make(chan T, size)
	if err := ee.On(event, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Publish sends message to all subscribers of event in subscription order.
func (ee *Emitter[T]) Publish(event string, message T) {
	ee.rwMutex.RLock()
	defer ee.rwMutex.RUnlock()
	for _, out := range ee.events[event] {
		out <- message
	}
}

// Subscribers returns the number of subscribers of event.
func (ee *Emitter[T]) Subscribers(event string) int {
	ee.rwMutex.RLock()
	defer ee.rwMutex.RUnlock()
	return len(ee.events[event])
}

// Close closes every subscriber channel. Subscribing afterwards fails with ErrClosed.
func (ee *Emitter[T]) Close() error {
	ee.rwMutex.Lock()
	defer ee.rwMutex.Unlock()
	for event, outs := range ee.events {
		for _, out := range outs {
			close(out)
		}
		delete(ee.events, event)
	}
	ee.closed = true
	return nil
}

func (ee *Emitter[T]) UnsubscribeAll(event string) error {
	ee.rwMutex.Lock()
	defer ee.rwMutex.Unlock()
	outs, exist := ee.events[event]
	if !exist {
		return ErrEventNotFound
	}
	for _, out := range outs {
		close(out)
	}
	delete(ee.events, event)
	return nil
}

// Unsubscribe closes and removes the subscriber channel.
func (ee *Emitter[T]) Unsubscribe(event string, deleting <-chan T) error {
	ee.rwMutex.Lock()
	defer ee.rwMutex.Unlock()
	outs, exist := ee.events[event]
	if !exist {
		return ErrEventNotFound
	}
	newOuts := []chan T{}
	for _, out := range outs {
		if (<-chan T)(out) == deleting {
			close(out)
		} else {
			newOuts = append(newOuts, out)
		}
	}
	ee.events[event] = newOuts
	return nil
}
