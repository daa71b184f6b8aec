package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/sirupsen/logrus"
)

var testPolicy = StorePolicy{Timeout: time.Second, Attempts: 2}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// fakeClock - управляемые часы для проверки времени реакции
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// memoryIncidentRepo повторяет условные обновления SQL-репозитория в памяти
type memoryIncidentRepo struct {
	mu        sync.Mutex
	incidents map[uuid.UUID]*models.Incident
}

func newMemoryIncidentRepo() *memoryIncidentRepo {
	return &memoryIncidentRepo{incidents: make(map[uuid.UUID]*models.Incident)}
}

func cloneIncident(in *models.Incident) *models.Incident {
	out := *in
	out.Actions = append([]models.Action{}, in.Actions...)
	if in.ClosedAt != nil {
		closedAt := *in.ClosedAt
		out.ClosedAt = &closedAt
	}
	if in.ResponseTimeSeconds != nil {
		rt := *in.ResponseTimeSeconds
		out.ResponseTimeSeconds = &rt
	}
	return &out
}

func (r *memoryIncidentRepo) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident.ID = uuid.New()
	r.incidents[incident.ID] = cloneIncident(incident)
	return nil
}

func (r *memoryIncidentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return nil, apperror.NotFound("memory.GetByID", "incident %s not found", id)
	}
	return cloneIncident(incident), nil
}

func (r *memoryIncidentRepo) AppendAction(_ context.Context, id uuid.UUID, action models.Action) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return nil, apperror.NotFound("memory.AppendAction", "incident %s not found", id)
	}
	if incident.Status != models.IncidentActive {
		return nil, apperror.InvalidState("memory.AppendAction", "incident %s is not active", id)
	}
	incident.Actions = append(incident.Actions, action)
	return cloneIncident(incident), nil
}

func (r *memoryIncidentRepo) Close(_ context.Context, id uuid.UUID, closedAt time.Time, responseTimeSeconds int) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return nil, apperror.NotFound("memory.Close", "incident %s not found", id)
	}
	if incident.Status != models.IncidentActive {
		return nil, apperror.InvalidState("memory.Close", "incident %s is not active", id)
	}
	incident.Status = models.IncidentClosed
	incident.ClosedAt = &closedAt
	incident.ResponseTimeSeconds = &responseTimeSeconds
	return cloneIncident(incident), nil
}

func (r *memoryIncidentRepo) ListRecent(context.Context, int) ([]*models.IncidentSummary, error) {
	return nil, nil
}

func (r *memoryIncidentRepo) ListForStats(context.Context) ([]*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		out = append(out, cloneIncident(incident))
	}
	return out, nil
}

func (r *memoryIncidentRepo) GetIncidentFromCache(context.Context, uuid.UUID) (*models.Incident, error) {
	return nil, nil
}

func (r *memoryIncidentRepo) SetIncidentCache(context.Context, *models.Incident) error {
	return nil
}

func (r *memoryIncidentRepo) InvalidateIncidentCache(context.Context, uuid.UUID) error {
	return nil
}

// cachingIncidentRepo добавляет к репозиторию в памяти кеш и хук после чтения из БД
type cachingIncidentRepo struct {
	*memoryIncidentRepo

	cacheMu   sync.Mutex
	cache     map[uuid.UUID]*models.Incident
	cacheHits int
	afterGet  func()
}

func (r *cachingIncidentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, err := r.memoryIncidentRepo.GetByID(ctx, id)
	if hook := r.afterGet; hook != nil {
		hook()
	}
	return incident, err
}

func (r *cachingIncidentRepo) GetIncidentFromCache(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	incident, ok := r.cache[id]
	if !ok {
		return nil, nil
	}
	r.cacheHits++
	return cloneIncident(incident), nil
}

func (r *cachingIncidentRepo) SetIncidentCache(_ context.Context, incident *models.Incident) error {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	r.cache[incident.ID] = cloneIncident(incident)
	return nil
}

func (r *cachingIncidentRepo) InvalidateIncidentCache(_ context.Context, id uuid.UUID) error {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	delete(r.cache, id)
	return nil
}

// staticSafepoints - справочник из фиксированного списка
type staticSafepoints struct {
	SafepointService
	byID map[uuid.UUID]*models.Safepoint
}

func newStaticSafepoints(sps ...*models.Safepoint) *staticSafepoints {
	s := &staticSafepoints{byID: make(map[uuid.UUID]*models.Safepoint)}
	for _, sp := range sps {
		s.byID[sp.ID] = sp
	}
	return s
}

func (s *staticSafepoints) GetSafepoint(_ context.Context, id uuid.UUID) (*models.Safepoint, error) {
	sp, ok := s.byID[id]
	if !ok || !sp.IsActive {
		return nil, apperror.NotFound("static.GetSafepoint", "safepoint %s not found", id)
	}
	return sp, nil
}
