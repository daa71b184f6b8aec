package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/shenikar/safepoint/internal/service"
)

const safepointColumns = `id, name, type, city, address, hours, latitude, longitude, is_active`

type SafepointRepository struct {
	db Querier
}

func NewSafepointRepository(db Querier) service.SafepointRepository {
	return &SafepointRepository{db: db}
}

// ListActive возвращает активные точки по названию. Пустой city - все города.
func (r *SafepointRepository) ListActive(ctx context.Context, city string) ([]*models.Safepoint, error) {
	query := `
		SELECT ` + safepointColumns + `
		FROM safepoints
		WHERE is_active = TRUE
			AND ($1 = '' OR city = $1)
		ORDER BY name, id;
	`
	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list safepoints: %w", err)
	}
	defer rows.Close()

	safepoints := make([]*models.Safepoint, 0)
	for rows.Next() {
		sp, err := scanSafepoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safepoint row: %w", err)
		}
		safepoints = append(safepoints, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return safepoints, nil
}

// GetActiveByID возвращает активную точку по UUID
func (r *SafepointRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Safepoint, error) {
	query := `SELECT ` + safepointColumns + ` FROM safepoints WHERE id = $1 AND is_active = TRUE;`
	sp, err := scanSafepoint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("repository.GetActiveByID", "safepoint with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get safepoint by id: %w", err)
	}
	return sp, nil
}

func scanSafepoint(row pgx.Row) (*models.Safepoint, error) {
	sp := &models.Safepoint{}
	err := row.Scan(
		&sp.ID,
		&sp.Name,
		&sp.Type,
		&sp.City,
		&sp.Address,
		&sp.Hours,
		&sp.Latitude,
		&sp.Longitude,
		&sp.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return sp, nil
}
