package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/shenikar/safepoint/internal/service"
)

const incidentColumns = `id, safepoint_id, staff_id, status, actions_taken, notes, created_at, closed_at, response_time_seconds`

type IncidentRepository struct {
	db          Querier
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db Querier, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об обращении в бд. Время создания передается сервисом.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	actions, err := json.Marshal(incident.Actions)
	if err != nil {
		return fmt.Errorf("failed to marshal incident actions: %w", err)
	}
	query := `
		INSERT INTO incidents (safepoint_id, staff_id, status, actions_taken, notes, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6) RETURNING id;
	`
	err = r.db.QueryRow(ctx, query,
		incident.SafepointID,
		incident.StaffID,
		incident.Status,
		actions,
		incident.Notes,
		incident.CreatedAt,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает обращение по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("repository.GetByID", "incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// AppendAction дописывает действие в конец actions_taken одной командой, только пока обращение активно
func (r *IncidentRepository) AppendAction(ctx context.Context, id uuid.UUID, action models.Action) (*models.Incident, error) {
	payload, err := json.Marshal([]models.Action{action})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal incident action: %w", err)
	}
	query := `
		UPDATE incidents SET
			actions_taken = actions_taken || $2::jsonb
		WHERE id = $1 AND status = 'active'
		RETURNING ` + incidentColumns + `;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, payload))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notActive(ctx, "repository.AppendAction", id)
		}
		return nil, fmt.Errorf("failed to append incident action: %w", err)
	}
	return incident, nil
}

// Close переводит обращение в closed. Условие по статусу гарантирует, что закрытие произойдет один раз.
func (r *IncidentRepository) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, responseTimeSeconds int) (*models.Incident, error) {
	query := `
		UPDATE incidents SET
			status = 'closed',
			closed_at = $2,
			response_time_seconds = $3
		WHERE id = $1 AND status = 'active'
		RETURNING ` + incidentColumns + `;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, closedAt, responseTimeSeconds))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notActive(ctx, "repository.Close", id)
		}
		return nil, fmt.Errorf("failed to close incident: %w", err)
	}
	return incident, nil
}

// notActive различает отсутствующее и уже закрытое обращение после условного UPDATE без строк
func (r *IncidentRepository) notActive(ctx context.Context, op string, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM incidents WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check incident existence: %w", err)
	}
	if !exists {
		return apperror.NotFound(op, "incident with id %s not found", id)
	}
	return apperror.InvalidState(op, "incident with id %s is already closed", id)
}

// ListRecent возвращает последние обращения вместе с данными точки
func (r *IncidentRepository) ListRecent(ctx context.Context, limit int) ([]*models.IncidentSummary, error) {
	query := `
		SELECT
			i.id,
			i.safepoint_id,
			i.staff_id,
			i.status,
			i.actions_taken,
			i.notes,
			i.created_at,
			i.closed_at,
			i.response_time_seconds,
			COALESCE(s.name, ''),
			COALESCE(s.type, ''),
			COALESCE(s.city, '')
		FROM incidents i
		LEFT JOIN safepoints s ON s.id = i.safepoint_id
		ORDER BY i.created_at DESC, i.id
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent incidents: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.IncidentSummary, 0)
	for rows.Next() {
		summary := &models.IncidentSummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.SafepointID,
			&summary.StaffID,
			&summary.Status,
			&summary.Actions,
			&summary.Notes,
			&summary.CreatedAt,
			&summary.ClosedAt,
			&summary.ResponseTimeSeconds,
			&summary.SafepointName,
			&summary.SafepointType,
			&summary.SafepointCity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return summaries, nil
}

// ListForStats возвращает обращения, нужные для сводки: сегодняшние, активные и с временем реакции
func (r *IncidentRepository) ListForStats(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT id, safepoint_id, status, created_at, response_time_seconds
		FROM incidents;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents for stats: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.SafepointID,
			&incident.Status,
			&incident.CreatedAt,
			&incident.ResponseTimeSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in ListForStats: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListForStats: %w", err)
	}
	return incidents, nil
}

// GetIncidentFromCache пытается получить обращение из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет обращение в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	if r.cacheTTL <= 0 {
		return nil
	}
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет обращение из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.SafepointID,
		&incident.StaffID,
		&incident.Status,
		&incident.Actions,
		&incident.Notes,
		&incident.CreatedAt,
		&incident.ClosedAt,
		&incident.ResponseTimeSeconds,
	)
	if err != nil {
		return nil, err
	}
	if incident.Actions == nil {
		incident.Actions = []models.Action{}
	}
	return incident, nil
}
