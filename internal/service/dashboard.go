package service

import (
	"context"
	"math"
	"time"

	"github.com/shenikar/safepoint/internal/events"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// ChangeFeed - источник уведомлений об изменениях обращений
type ChangeFeed interface {
	Subscribe(fn events.Listener) (unsubscribe func())
}

// DashboardService определяет контракт панели мониторинга
type DashboardService interface {
	RecentIncidents(ctx context.Context, limit int) ([]*models.IncidentSummary, error)
	Stats(ctx context.Context) (models.DashboardStats, error)
	Subscribe(onChange events.Listener) (unsubscribe func())
}

type dashboardService struct {
	repo   IncidentRepository
	feed   ChangeFeed
	logger *logrus.Logger
	policy StorePolicy
	now    func() time.Time
}

func NewDashboardService(repo IncidentRepository, feed ChangeFeed, logger *logrus.Logger, policy StorePolicy) DashboardService {
	return &dashboardService{
		repo:   repo,
		feed:   feed,
		logger: logger,
		policy: policy,
		now:    time.Now,
	}
}

// RecentIncidents возвращает последние обращения в любом статусе, новые первыми
func (s *dashboardService) RecentIncidents(ctx context.Context, limit int) ([]*models.IncidentSummary, error) {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RecentIncidents",
		"limit":   limit,
	})

	var incidents []*models.IncidentSummary
	err := s.policy.read(ctx, func(ctx context.Context) error {
		var err error
		incidents, err = s.repo.ListRecent(ctx, limit)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list recent incidents from repository")
		return nil, classify("service.RecentIncidents", err)
	}

	log.WithField("count", len(incidents)).Debug("Recent incidents listed successfully")
	return incidents, nil
}

// Stats загружает обращения и считает сводку
func (s *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var incidents []*models.Incident
	err := s.policy.read(ctx, func(ctx context.Context) error {
		var err error
		incidents, err = s.repo.ListForStats(ctx)
		return err
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "dashboard",
			"method":  "Stats",
		}).WithError(err).Error("Failed to load incidents for stats")
		return models.DashboardStats{}, classify("service.Stats", err)
	}
	return ComputeStats(incidents, s.now()), nil
}

// Subscribe регистрирует обработчик изменений обращений
func (s *dashboardService) Subscribe(onChange events.Listener) (unsubscribe func()) {
	return s.feed.Subscribe(onChange)
}

// ComputeStats считает сводку по переданным обращениям без обращения к хранилищу.
// "Сегодня" начинается в полночь по часовому поясу now.
func ComputeStats(incidents []*models.Incident, now time.Time) models.DashboardStats {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats models.DashboardStats
	var total, closed int
	for _, incident := range incidents {
		if incident == nil {
			continue
		}
		if !incident.CreatedAt.Before(midnight) {
			stats.TodayCount++
		}
		switch incident.Status {
		case models.IncidentActive:
			stats.ActiveCount++
		case models.IncidentClosed:
			if incident.ResponseTimeSeconds != nil {
				total += *incident.ResponseTimeSeconds
				closed++
			}
		}
	}
	if closed > 0 {
		stats.AvgResponseTime = int(math.Round(float64(total) / float64(closed)))
	}
	return stats
}
