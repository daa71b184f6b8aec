package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/events"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд обращений
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	AppendAction(ctx context.Context, id uuid.UUID, action models.Action) (*models.Incident, error)
	Close(ctx context.Context, id uuid.UUID, closedAt time.Time, responseTimeSeconds int) (*models.Incident, error)
	ListRecent(ctx context.Context, limit int) ([]*models.IncidentSummary, error)
	ListForStats(ctx context.Context) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт жизненного цикла обращения
type IncidentService interface {
	OpenIncident(ctx context.Context, input models.OpenIncidentInput) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	RecordAction(ctx context.Context, id uuid.UUID, label string) (*models.Incident, error)
	CloseIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
}

type incidentService struct {
	repo       IncidentRepository
	safepoints SafepointService
	publisher  events.Publisher
	logger     *logrus.Logger
	policy     StorePolicy
	now        func() time.Time
}

func NewIncidentService(repo IncidentRepository, safepoints SafepointService, publisher events.Publisher, logger *logrus.Logger, policy StorePolicy) IncidentService {
	return &incidentService{
		repo:       repo,
		safepoints: safepoints,
		publisher:  publisher,
		logger:     logger,
		policy:     policy,
		now:        time.Now,
	}
}

// OpenIncident открывает обращение по выбранной точке. Время создания фиксируется здесь, а не в БД.
func (s *incidentService) OpenIncident(ctx context.Context, input models.OpenIncidentInput) (*models.Incident, error) {
	const op = "service.OpenIncident"
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "OpenIncident",
		"safepoint_id": input.SafepointID,
		"staff_id":     input.StaffID,
	})
	log.Info("Attempting to open a new incident")

	if input.SafepointID == uuid.Nil {
		return nil, apperror.Validation(op, "safepoint_id is required")
	}
	staffID := strings.TrimSpace(input.StaffID)
	if staffID == "" {
		return nil, apperror.Validation(op, "staff_id is required")
	}

	if _, err := s.safepoints.GetSafepoint(ctx, input.SafepointID); err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			log.Warn("Attempted to open an incident for an unknown safepoint")
			return nil, apperror.Validation(op, "unknown safepoint %s", input.SafepointID)
		}
		return nil, err
	}

	incident := &models.Incident{
		SafepointID: input.SafepointID,
		StaffID:     staffID,
		Status:      models.IncidentActive,
		Actions:     []models.Action{},
		Notes:       input.Notes,
		CreatedAt:   s.now(),
	}
	err := s.policy.write(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, incident)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, classify(op, err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident opened successfully")
	s.afterMutation(ctx, log, events.IncidentOpened, incident)
	return incident, nil
}

// GetIncident получает обращение по ID, сначала из кеша закрытых обращений
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.load(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident")
		return nil, classify("service.GetIncident", err)
	}

	// В кеш попадают только закрытые обращения, они больше не меняются
	if incident.IsClosed() {
		if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}
	return incident, nil
}

// RecordAction добавляет действие к открытому обращению
func (s *incidentService) RecordAction(ctx context.Context, id uuid.UUID, label string) (*models.Incident, error) {
	const op = "service.RecordAction"
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RecordAction",
		"incident_id": id,
		"action":      label,
	})

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, apperror.Validation(op, "action label is required")
	}

	current, err := s.load(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to record an action on a missing incident")
		return nil, classify(op, err)
	}
	if current.IsClosed() {
		log.Warn("Attempted to record an action on a closed incident")
		return nil, apperror.InvalidState(op, "incident %s is closed", id)
	}

	action := models.Action{Action: label, Timestamp: s.now()}
	var updated *models.Incident
	err = s.policy.write(ctx, func(ctx context.Context) error {
		updated, err = s.repo.AppendAction(ctx, id, action)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to append action in repository")
		return nil, classify(op, err)
	}

	log.WithField("actions", len(updated.Actions)).Info("Action recorded successfully")
	s.afterMutation(ctx, log, events.IncidentActionRecorded, updated)
	return updated, nil
}

// CloseIncident закрывает обращение и фиксирует время реакции в секундах
func (s *incidentService) CloseIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	const op = "service.CloseIncident"
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CloseIncident",
		"incident_id": id,
	})
	log.Info("Attempting to close incident")

	current, err := s.load(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to close a missing incident")
		return nil, classify(op, err)
	}
	if current.IsClosed() {
		log.Warn("Attempted to close an already closed incident")
		return nil, apperror.InvalidState(op, "incident %s is already closed", id)
	}

	closedAt := s.now()
	responseTime := ResponseTimeSeconds(current.CreatedAt, closedAt)

	var updated *models.Incident
	err = s.policy.write(ctx, func(ctx context.Context) error {
		updated, err = s.repo.Close(ctx, id, closedAt, responseTime)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to close incident in repository")
		return nil, classify(op, err)
	}

	log.WithField("response_time_seconds", responseTime).Info("Incident closed successfully")
	s.afterMutation(ctx, log, events.IncidentClosed, updated)
	return updated, nil
}

// ResponseTimeSeconds - целое число секунд между открытием и закрытием, не меньше нуля
func ResponseTimeSeconds(createdAt, closedAt time.Time) int {
	elapsed := closedAt.Sub(createdAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}

func (s *incidentService) load(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	var incident *models.Incident
	err := s.policy.read(ctx, func(ctx context.Context) error {
		var err error
		incident, err = s.repo.GetByID(ctx, id)
		return err
	})
	return incident, err
}

// afterMutation сбрасывает кеш и публикует событие. Ошибки здесь не отменяют уже выполненное изменение.
func (s *incidentService) afterMutation(ctx context.Context, log *logrus.Entry, eventType events.EventType, incident *models.Incident) {
	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if s.publisher == nil {
		return
	}
	event := events.NewChangeEvent(eventType, incident, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident change event")
	}
}
