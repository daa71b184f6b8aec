package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус обращения
type IncidentStatus string

const (
	IncidentActive IncidentStatus = "active"
	IncidentClosed IncidentStatus = "closed"
)

// Action - шаг, выполненный сотрудником по открытому обращению
type Action struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Incident - одно обращение за помощью от открытия до закрытия
type Incident struct {
	ID                  uuid.UUID      `json:"id"`
	SafepointID         uuid.UUID      `json:"safepoint_id"`
	StaffID             string         `json:"staff_id"`
	Status              IncidentStatus `json:"status"`
	Actions             []Action       `json:"actions_taken"`
	Notes               string         `json:"notes"`
	CreatedAt           time.Time      `json:"created_at"`
	ClosedAt            *time.Time     `json:"closed_at,omitempty"`
	ResponseTimeSeconds *int           `json:"response_time_seconds,omitempty"`
}

func (i *Incident) IsClosed() bool {
	return i.Status == IncidentClosed
}

// IncidentSummary - обращение вместе с данными точки для панели мониторинга
type IncidentSummary struct {
	Incident
	SafepointName string        `json:"safepoint_name"`
	SafepointType SafepointType `json:"safepoint_type"`
	SafepointCity string        `json:"safepoint_city"`
}

// OpenIncidentInput - данные для открытия обращения
type OpenIncidentInput struct {
	SafepointID uuid.UUID
	StaffID     string
	Notes       string
}
