package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/shenikar/safepoint/pkg/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=safepoint.go -destination=mocks/mock_safepoint.go -package=mocks

const (
	// CodePhraseKey - ключ текущей кодовой фразы в system_config
	CodePhraseKey = "current_code_phrase"
	// DefaultNearestLimit - сколько ближайших точек возвращать по умолчанию
	DefaultNearestLimit = 3
)

// SafepointRepository определяет контракт для чтения справочника точек
type SafepointRepository interface {
	ListActive(ctx context.Context, city string) ([]*models.Safepoint, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Safepoint, error)
}

// ConfigRepository - доступ к таблице system_config
type ConfigRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// SafepointService определяет контракт справочника безопасных точек
type SafepointService interface {
	ListSafepoints(ctx context.Context, city string) ([]*models.Safepoint, error)
	NearestSafepoints(ctx context.Context, lat, lon float64, limit int) ([]*models.RankedSafepoint, error)
	GetSafepoint(ctx context.Context, id uuid.UUID) (*models.Safepoint, error)
	CodePhrase(ctx context.Context) string
}

// SafepointOptions - настройки справочника
type SafepointOptions struct {
	CacheTTL           time.Duration
	CodePhraseFallback string
	Policy             StorePolicy
}

type safepointService struct {
	repo        SafepointRepository
	configRepo  ConfigRepository
	logger      *logrus.Logger
	opts        SafepointOptions
	listCache   *ttlcache.Cache[string, []*models.Safepoint]
	phraseCache *ttlcache.Cache[string, string]
}

func NewSafepointService(repo SafepointRepository, configRepo ConfigRepository, logger *logrus.Logger, opts SafepointOptions) SafepointService {
	s := &safepointService{
		repo:       repo,
		configRepo: configRepo,
		logger:     logger,
		opts:       opts,
	}
	// Справочник меняется внешним процессом, поэтому срок жизни не продлевается при чтении
	if opts.CacheTTL > 0 {
		s.listCache = ttlcache.New(
			ttlcache.WithTTL[string, []*models.Safepoint](opts.CacheTTL),
			ttlcache.WithDisableTouchOnHit[string, []*models.Safepoint](),
		)
		s.phraseCache = ttlcache.New(
			ttlcache.WithTTL[string, string](opts.CacheTTL),
			ttlcache.WithDisableTouchOnHit[string, string](),
		)
	}
	return s
}

// ListSafepoints возвращает активные точки, отсортированные по названию. Пустой city - без фильтра.
func (s *safepointService) ListSafepoints(ctx context.Context, city string) ([]*models.Safepoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safepoint",
		"method":  "ListSafepoints",
		"city":    city,
	})

	if s.listCache != nil {
		if item := s.listCache.Get(city); item != nil {
			log.Debug("Safepoints served from cache")
			return item.Value(), nil
		}
	}

	var safepoints []*models.Safepoint
	err := s.opts.Policy.read(ctx, func(ctx context.Context) error {
		var err error
		safepoints, err = s.repo.ListActive(ctx, city)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list safepoints from repository")
		return nil, classify("service.ListSafepoints", err)
	}

	if s.listCache != nil {
		s.listCache.Set(city, safepoints, ttlcache.DefaultTTL)
	}
	log.WithField("count", len(safepoints)).Debug("Safepoints listed successfully")
	return safepoints, nil
}

// NearestSafepoints возвращает активные точки по возрастанию расстояния до (lat, lon).
// При равном расстоянии порядок определяется id.
func (s *safepointService) NearestSafepoints(ctx context.Context, lat, lon float64, limit int) ([]*models.RankedSafepoint, error) {
	const op = "service.NearestSafepoints"
	if lat < -90 || lat > 90 {
		return nil, apperror.Validation(op, "latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, apperror.Validation(op, "longitude %v out of range", lon)
	}
	if limit <= 0 {
		limit = DefaultNearestLimit
	}

	safepoints, err := s.ListSafepoints(ctx, "")
	if err != nil {
		return nil, err
	}

	ranked := RankByDistance(safepoints, lat, lon)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// RankByDistance считает расстояние до каждой точки и сортирует по возрастанию, затем по id
func RankByDistance(safepoints []*models.Safepoint, lat, lon float64) []*models.RankedSafepoint {
	ranked := make([]*models.RankedSafepoint, 0, len(safepoints))
	for _, sp := range safepoints {
		if sp == nil || !sp.IsActive {
			continue
		}
		ranked = append(ranked, &models.RankedSafepoint{
			Safepoint:  *sp,
			DistanceKm: geo.Distance(lat, lon, sp.Latitude, sp.Longitude),
		})
	}
	slices.SortStableFunc(ranked, func(a, b *models.RankedSafepoint) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return ranked
}

// GetSafepoint возвращает активную точку по id
func (s *safepointService) GetSafepoint(ctx context.Context, id uuid.UUID) (*models.Safepoint, error) {
	var sp *models.Safepoint
	err := s.opts.Policy.read(ctx, func(ctx context.Context) error {
		var err error
		sp, err = s.repo.GetActiveByID(ctx, id)
		return err
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":      "safepoint",
			"method":       "GetSafepoint",
			"safepoint_id": id,
		}).WithError(err).Warn("Failed to get safepoint")
		return nil, classify("service.GetSafepoint", err)
	}
	return sp, nil
}

// CodePhrase возвращает текущую кодовую фразу. При любой ошибке возвращается запасная фраза.
func (s *safepointService) CodePhrase(ctx context.Context) string {
	if s.phraseCache != nil {
		if item := s.phraseCache.Get(CodePhraseKey); item != nil {
			return item.Value()
		}
	}

	var phrase string
	err := s.opts.Policy.read(ctx, func(ctx context.Context) error {
		var err error
		phrase, err = s.configRepo.GetValue(ctx, CodePhraseKey)
		return err
	})
	if err != nil || phrase == "" {
		s.logger.WithFields(logrus.Fields{
			"service": "safepoint",
			"method":  "CodePhrase",
		}).WithError(err).Warn("Code phrase unavailable, using fallback")
		return s.opts.CodePhraseFallback
	}

	if s.phraseCache != nil {
		s.phraseCache.Set(CodePhraseKey, phrase, ttlcache.DefaultTTL)
	}
	return phrase
}
