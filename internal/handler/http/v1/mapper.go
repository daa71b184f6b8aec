package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/chatbot"
	"github.com/shenikar/safepoint/internal/models"
)

// DTOToOpenIncidentInput преобразует DTO открытия обращения во входные данные сервиса.
// SafepointID уже проверен валидатором.
func DTOToOpenIncidentInput(dto OpenIncidentRequest) models.OpenIncidentInput {
	return models.OpenIncidentInput{
		SafepointID: uuid.MustParse(dto.SafepointID),
		StaffID:     dto.StaffID,
		Notes:       dto.Notes,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	actions := make([]ActionResponse, len(model.Actions))
	for i, action := range model.Actions {
		actions[i] = ActionResponse{Action: action.Action, Timestamp: action.Timestamp}
	}
	return &IncidentResponse{
		ID:                  model.ID,
		SafepointID:         model.SafepointID,
		StaffID:             model.StaffID,
		Status:              string(model.Status),
		ActionsTaken:        actions,
		Notes:               model.Notes,
		CreatedAt:           model.CreatedAt,
		ClosedAt:            model.ClosedAt,
		ResponseTimeSeconds: model.ResponseTimeSeconds,
	}
}

// ModelsToIncidentSummaryResponses преобразует слайс обращений панели в слайс DTO
func ModelsToIncidentSummaryResponses(models []*models.IncidentSummary) []*IncidentSummaryResponse {
	responses := make([]*IncidentSummaryResponse, len(models))
	for i, model := range models {
		responses[i] = &IncidentSummaryResponse{
			IncidentResponse: *ModelToIncidentResponse(&model.Incident),
			Safepoint: SafepointBrief{
				Name: model.SafepointName,
				Type: string(model.SafepointType),
				City: model.SafepointCity,
			},
		}
	}
	return responses
}

// ModelToSafepointResponse преобразует точку в DTO
func ModelToSafepointResponse(model *models.Safepoint) SafepointResponse {
	return SafepointResponse{
		ID:        model.ID,
		Name:      model.Name,
		Type:      string(model.Type),
		City:      model.City,
		Address:   model.Address,
		Hours:     model.Hours,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
	}
}

// ModelsToSafepointResponses преобразует слайс точек в слайс DTO
func ModelsToSafepointResponses(models []*models.Safepoint) []SafepointResponse {
	responses := make([]SafepointResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSafepointResponse(model)
	}
	return responses
}

// ModelsToNearestResponses преобразует ранжированные точки в слайс DTO
func ModelsToNearestResponses(models []*models.RankedSafepoint) []NearestSafepointResponse {
	responses := make([]NearestSafepointResponse, len(models))
	for i, model := range models {
		responses[i] = NearestSafepointResponse{
			SafepointResponse: ModelToSafepointResponse(&model.Safepoint),
			DistanceKm:        model.DistanceKm,
		}
	}
	return responses
}

// ModelToStatsResponse преобразует сводку в DTO
func ModelToStatsResponse(stats models.DashboardStats) StatsResponse {
	return StatsResponse{
		TodayCount:      stats.TodayCount,
		AvgResponseTime: stats.AvgResponseTime,
		ActiveCount:     stats.ActiveCount,
	}
}

// DTOToBotRequest преобразует сообщение пользователя в запрос к боту
func DTOToBotRequest(dto BotMessageRequest) chatbot.Request {
	return chatbot.Request{
		Option:    dto.Option,
		Text:      dto.Text,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

// BotReplyToResponse преобразует ответ бота в DTO
func BotReplyToResponse(reply chatbot.Reply) BotReplyResponse {
	messages := make([]BotMessageResponse, len(reply.Messages))
	for i, msg := range reply.Messages {
		messages[i] = BotMessageResponse{Text: msg.Text, Options: msg.Options}
	}
	return BotReplyResponse{Step: string(reply.Step), Messages: messages}
}
