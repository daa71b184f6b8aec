package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier - часть pgxpool.Pool, которой пользуются репозитории
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
