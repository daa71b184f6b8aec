package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/service"
)

type ConfigRepository struct {
	db Querier
}

func NewConfigRepository(db Querier) service.ConfigRepository {
	return &ConfigRepository{db: db}
}

// GetValue читает значение из system_config
func (r *ConfigRepository) GetValue(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM system_config WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NotFound("repository.GetValue", "config key %q not found", key)
		}
		return "", fmt.Errorf("failed to get config value: %w", err)
	}
	return value, nil
}
