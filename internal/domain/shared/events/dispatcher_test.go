package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: "user:1",
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

func TestInMemoryDispatcher_PublishBeforeStart(t *testing.T) {
	d := NewInMemoryDispatcher(4)

	err := d.Publish(newTestEvent("user.registered"))

	assert.Error(t, err)
}

func TestInMemoryDispatcher_DeliversToSubscribedHandler(t *testing.T) {
	d := NewInMemoryDispatcher(4)

	var mu sync.Mutex
	var received []string
	d.Subscribe("user.registered", func(event DomainEvent) {
		mu.Lock()
		received = append(received, event.GetEventType())
		mu.Unlock()
	})

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(newTestEvent("user.registered")))
	require.NoError(t, d.Publish(newTestEvent("user.password.changed")))
	require.NoError(t, d.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"user.registered"}, received)
}

func TestInMemoryDispatcher_StopFlushesBufferedEvents(t *testing.T) {
	d := NewInMemoryDispatcher(8)

	var mu sync.Mutex
	count := 0
	d.Subscribe("user.registered", func(event DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	require.NoError(t, d.Start())
	events := []DomainEvent{
		newTestEvent("user.registered"),
		newTestEvent("user.registered"),
		newTestEvent("user.registered"),
	}
	require.NoError(t, d.PublishAll(events))
	require.NoError(t, d.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestInMemoryDispatcher_DoubleStartFails(t *testing.T) {
	d := NewInMemoryDispatcher(4)

	require.NoError(t, d.Start())
	defer func() { _ = d.Stop() }()

	assert.Error(t, d.Start())
}

func TestInMemoryDispatcher_PublishAfterStopFails(t *testing.T) {
	d := NewInMemoryDispatcher(4)

	require.NoError(t, d.Start())
	require.NoError(t, d.Stop())

	assert.Error(t, d.Publish(newTestEvent("user.registered")))
}
