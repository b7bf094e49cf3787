package events

import (
	"fmt"
	"sync"
)

// InMemoryDispatcher fans domain events out to subscribed handlers on a
// single background goroutine. Publish never blocks; events arriving
// while the buffer is full are rejected.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	eventCh  chan DomainEvent
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// NewInMemoryDispatcher creates a dispatcher with the given buffer size.
func NewInMemoryDispatcher(bufferSize int) *InMemoryDispatcher {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &InMemoryDispatcher{
		handlers: make(map[string][]EventHandler),
		eventCh:  make(chan DomainEvent, bufferSize),
		stopCh:   make(chan struct{}),
	}
}

// Subscribe registers a handler for the given event type. Empty types
// and nil handlers are ignored.
func (d *InMemoryDispatcher) Subscribe(eventType string, handler EventHandler) {
	if eventType == "" || handler == nil {
		return
	}
	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
}

// Publish enqueues a single event for dispatch.
func (d *InMemoryDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()

	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event buffer full, dropped %s", event.GetEventType())
	}
}

// PublishAll enqueues multiple events, stopping at the first failure.
func (d *InMemoryDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

// Start launches the dispatch loop.
func (d *InMemoryDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher already started")
	}

	d.running = true
	d.wg.Add(1)
	go d.run()
	return nil
}

// Stop terminates the dispatch loop after flushing buffered events.
func (d *InMemoryDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryDispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.dispatch(event)
		}
	}
}

func (d *InMemoryDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.GetEventType()]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
