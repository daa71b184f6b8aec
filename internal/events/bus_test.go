package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllListeners(t *testing.T) {
	bus := NewBus()
	var got1, got2 []ChangeEvent
	bus.Subscribe(func(_ context.Context, e ChangeEvent) { got1 = append(got1, e) })
	bus.Subscribe(func(_ context.Context, e ChangeEvent) { got2 = append(got2, e) })

	event := ChangeEvent{Type: IncidentOpened, IncidentID: uuid.New()}
	require.NoError(t, bus.Publish(context.Background(), event))

	assert.Equal(t, []ChangeEvent{event}, got1)
	assert.Equal(t, []ChangeEvent{event}, got2)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(context.Context, ChangeEvent) { calls++ })
	assert.Equal(t, 1, bus.Len())

	require.NoError(t, bus.Publish(context.Background(), ChangeEvent{Type: IncidentOpened}))
	unsubscribe()
	unsubscribe() // повторная отписка безопасна
	require.NoError(t, bus.Publish(context.Background(), ChangeEvent{Type: IncidentClosed}))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	received := 0
	bus.Subscribe(func(context.Context, ChangeEvent) {
		mu.Lock()
		received++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = bus.Publish(context.Background(), ChangeEvent{Type: IncidentActionRecorded})
		}()
		go func() {
			defer wg.Done()
			unsubscribe := bus.Subscribe(func(context.Context, ChangeEvent) {})
			unsubscribe()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, received)
	assert.Equal(t, 1, bus.Len())
}

func TestNewChangeEvent(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	incident := &models.Incident{ID: uuid.New(), SafepointID: uuid.New(), Status: models.IncidentClosed}

	event := NewChangeEvent(IncidentClosed, incident, at)

	assert.Equal(t, IncidentClosed, event.Type)
	assert.Equal(t, incident.ID, event.IncidentID)
	assert.Equal(t, incident.SafepointID, event.SafepointID)
	assert.Equal(t, models.IncidentClosed, event.Status)
	assert.Equal(t, at, event.OccurredAt)
}
