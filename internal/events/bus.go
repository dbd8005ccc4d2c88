// Package events provides a non-blocking pub/sub bus for build lifecycle
// diagnostics.
package events

import (
	"sync"
	"time"
)

// EventType identifies a build lifecycle event.
type EventType string

const (
	// EventBuildStarted is published when a frame build begins.
	EventBuildStarted EventType = "build_started"
	// EventTaskSkipped is published when a task contributes no frame
	// records (missing dates or entirely after the window).
	EventTaskSkipped EventType = "task_skipped"
	// EventBuildCompleted is published when a frame build finishes.
	EventBuildCompleted EventType = "build_completed"
	// EventPlanCompiled is published when an operation plan is compiled.
	EventPlanCompiled EventType = "plan_compiled"
	// EventLiveReload is published when a watched input file changes.
	EventLiveReload EventType = "live_reload"
)

// Event is one published occurrence.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Data      map[string]any
}

// Subscriber receives events.
type Subscriber func(Event)

// Bus delivers events asynchronously over buffered channels. A slow
// subscriber never blocks a publisher: when a subscriber's buffer is full
// the event is dropped for that subscriber.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]chan Event
	bufferSize  int
}

// NewBus creates a bus with the given per-subscriber buffer size.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Bus{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers fn for one event type and returns an unsubscribe
// function. fn runs on its own goroutine; panics in fn are contained.
func (b *Bus) Subscribe(eventType EventType, fn Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	b.subscribers[eventType] = append(b.subscribers[eventType], ch)

	go func() {
		for event := range ch {
			func() {
				defer func() { _ = recover() }()
				fn(event)
			}()
		}
	}()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subscribers[eventType]
		for i, sub := range subs {
			if sub == ch {
				b.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
	}
}

// Publish sends an event to every subscriber of its type without blocking.
func (b *Bus) Publish(eventType EventType, data map[string]any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	event := Event{Type: eventType, Timestamp: time.Now().UTC(), Data: data}
	for _, ch := range b.subscribers[eventType] {
		select {
		case ch <- event:
		default:
			// Buffer full: drop rather than block the build.
		}
	}
}

// Close shuts down all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for eventType, subs := range b.subscribers {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.subscribers, eventType)
	}
}
