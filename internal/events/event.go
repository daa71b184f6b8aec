package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/models"
)

//go:generate mockgen -source=event.go -destination=mocks/mock_event.go -package=mocks

// EventType - вид изменения обращения
type EventType string

const (
	IncidentOpened         EventType = "incident.opened"
	IncidentActionRecorded EventType = "incident.action_recorded"
	IncidentClosed         EventType = "incident.closed"
)

// ChangeEvent - уведомление об изменении обращения
type ChangeEvent struct {
	Type        EventType             `json:"type"`
	IncidentID  uuid.UUID             `json:"incident_id"`
	SafepointID uuid.UUID             `json:"safepoint_id"`
	Status      models.IncidentStatus `json:"status"`
	OccurredAt  time.Time             `json:"occurred_at"`
}

// NewChangeEvent собирает событие по текущему состоянию обращения
func NewChangeEvent(t EventType, incident *models.Incident, at time.Time) ChangeEvent {
	return ChangeEvent{
		Type:        t,
		IncidentID:  incident.ID,
		SafepointID: incident.SafepointID,
		Status:      incident.Status,
		OccurredAt:  at,
	}
}

// Publisher - интерфейс для публикации событий об изменениях
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// Publishers рассылает событие каждому издателю по очереди. Ошибка одного не мешает остальным.
type Publishers []Publisher

func (ps Publishers) Publish(ctx context.Context, event ChangeEvent) error {
	var errs []error
	for _, p := range ps {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Listener получает события. Доставка "хотя бы один раз", поэтому обработчик должен быть идемпотентным.
type Listener func(ctx context.Context, event ChangeEvent)
