package v1

import (
	"time"

	"github.com/google/uuid"
)

// OpenIncidentRequest DTO для открытия обращения
// @Description DTO для открытия обращения
type OpenIncidentRequest struct {
	SafepointID string `json:"safepoint_id" validate:"required,uuid"`
	StaffID     string `json:"staff_id" validate:"required,max=100"`
	Notes       string `json:"notes,omitempty" validate:"max=2000"`
}

// RecordActionRequest DTO для добавления действия
// @Description DTO для добавления действия
type RecordActionRequest struct {
	Action string `json:"action" validate:"required,max=255"`
}

// ActionResponse DTO действия сотрудника
// @Description DTO действия сотрудника
type ActionResponse struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// IncidentResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IncidentResponse struct {
	ID                  uuid.UUID        `json:"id"`
	SafepointID         uuid.UUID        `json:"safepoint_id"`
	StaffID             string           `json:"staff_id"`
	Status              string           `json:"status"`
	ActionsTaken        []ActionResponse `json:"actions_taken"`
	Notes               string           `json:"notes"`
	CreatedAt           time.Time        `json:"created_at"`
	ClosedAt            *time.Time       `json:"closed_at"`
	ResponseTimeSeconds *int             `json:"response_time_seconds"`
}

// SafepointBrief DTO краткой информации о точке в списке обращений
// @Description DTO краткой информации о точке
type SafepointBrief struct {
	Name string `json:"name"`
	Type string `json:"type"`
	City string `json:"city"`
}

// IncidentSummaryResponse DTO обращения для панели мониторинга
// @Description DTO обращения для панели мониторинга
type IncidentSummaryResponse struct {
	IncidentResponse
	Safepoint SafepointBrief `json:"safepoint"`
}

// SafepointResponse DTO безопасной точки
// @Description DTO безопасной точки
type SafepointResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Hours     string    `json:"hours"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NearestSafepointResponse DTO точки с расстоянием в километрах
// @Description DTO точки с расстоянием
type NearestSafepointResponse struct {
	SafepointResponse
	DistanceKm float64 `json:"distance_km"`
}

// CodePhraseResponse DTO текущей кодовой фразы
// @Description DTO текущей кодовой фразы
type CodePhraseResponse struct {
	CodePhrase string `json:"code_phrase"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TodayCount      int `json:"today_count"`
	AvgResponseTime int `json:"avg_response_time"`
	ActiveCount     int `json:"active_count"`
}

// BotMessageRequest DTO сообщения пользователя боту: нажатая кнопка или текст
// @Description DTO сообщения боту
type BotMessageRequest struct {
	Option    string   `json:"option,omitempty" validate:"required_without=Text,max=100"`
	Text      string   `json:"text,omitempty" validate:"required_without=Option,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// BotMessageResponse DTO одного сообщения бота
// @Description DTO сообщения бота
type BotMessageResponse struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// BotReplyResponse DTO ответа бота
// @Description DTO ответа бота
type BotReplyResponse struct {
	Step     string               `json:"step"`
	Messages []BotMessageResponse `json:"messages"`
}
