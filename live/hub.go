// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"sync"
)

// TopicDashboard carries a fresh dashboard after every admin mutation
const TopicDashboard = "dashboard"

// Hub fans published values out to every subscriber of a topic.
// Each subscriber holds at most one pending value; a newer publish
// replaces it, so Publish never blocks on a slow reader.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[string]map[chan T]struct{}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[string]map[chan T]struct{}),
	}
}

// Subscribe returns a channel of values for topic and a function that
// unsubscribes and closes the channel. Calling it twice is safe.
func (h *Hub[T]) Subscribe(topic string) (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan T, 1)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan T]struct{})
	}
	h.subs[topic][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[topic], ch)
			close(ch)
		})
	}
}

// Publish delivers data to every current subscriber of topic
func (h *Hub[T]) Publish(topic string, data T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[topic] {
		select {
		case ch <- data:
		default:
			// Drop the stale value, then deliver the new one
			select {
			case <-ch:
			default:
			}
			ch <- data
		}
	}
}

// Subscribers reports how many subscribers topic has
func (h *Hub[T]) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[topic])
}
