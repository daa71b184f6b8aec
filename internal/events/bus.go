package events

import (
	"context"
	"sync"
)

// Bus - реестр подписчиков внутри процесса
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[uint64]Listener),
	}
}

// Subscribe регистрирует подписчика и возвращает функцию отписки. Повторный вызов отписки ничего не делает.
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish синхронно доставляет событие всем текущим подписчикам
func (b *Bus) Publish(ctx context.Context, event ChangeEvent) error {
	b.mu.RLock()
	snapshot := make([]Listener, 0, len(b.listeners))
	for _, fn := range b.listeners {
		snapshot = append(snapshot, fn)
	}
	b.mu.RUnlock()

	for _, fn := range snapshot {
		fn(ctx, event)
	}
	return nil
}

// Len возвращает количество подписчиков
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
