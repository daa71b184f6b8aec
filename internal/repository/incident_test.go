package repository

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow отдает заранее заданные значения или ошибку
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("unexpected number of scan destinations")
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type recordedQuery struct {
	sql  string
	args []any
}

// stubQuerier отвечает на QueryRow строками по очереди и запоминает запросы
type stubQuerier struct {
	rows    []pgx.Row
	queries []recordedQuery
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.queries = append(q.queries, recordedQuery{sql: sql, args: args})
	if len(q.rows) == 0 {
		return stubRow{err: errors.New("unexpected query")}
	}
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

func (q *stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func TestIncidentCacheKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a9e-0b7d-4c1e-9a55-2f8e1d3c4b5a")

	assert.Equal(t, "incident:6f1c2a9e-0b7d-4c1e-9a55-2f8e1d3c4b5a", incidentCacheKey(id))
}

func TestIncidentRepository_Close_Success(t *testing.T) {
	id := uuid.New()
	safepointID := uuid.New()
	createdAt := time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)
	closedAt := createdAt.Add(90 * time.Second)
	responseTime := 90
	db := &stubQuerier{rows: []pgx.Row{stubRow{values: []any{
		id, safepointID, "staff-1", models.IncidentClosed, []models.Action(nil), "",
		createdAt, &closedAt, &responseTime,
	}}}}
	repo := &IncidentRepository{db: db}

	incident, err := repo.Close(context.Background(), id, closedAt, responseTime)

	require.NoError(t, err)
	assert.Equal(t, models.IncidentClosed, incident.Status)
	require.NotNil(t, incident.ResponseTimeSeconds)
	assert.Equal(t, 90, *incident.ResponseTimeSeconds)
	assert.Equal(t, []models.Action{}, incident.Actions)

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0].sql, "WHERE id = $1 AND status = 'active'")
	assert.Equal(t, []any{id, closedAt, responseTime}, db.queries[0].args)
}

func TestIncidentRepository_Close_NoRows(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		wantErr error
	}{
		{name: "missing incident", exists: false, wantErr: apperror.ErrNotFound},
		{name: "already closed", exists: true, wantErr: apperror.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			db := &stubQuerier{rows: []pgx.Row{
				stubRow{err: pgx.ErrNoRows},
				stubRow{values: []any{tt.exists}},
			}}
			repo := &IncidentRepository{db: db}

			incident, err := repo.Close(context.Background(), id, time.Now(), 10)

			require.Error(t, err)
			assert.Nil(t, incident)
			assert.True(t, errors.Is(err, tt.wantErr))

			require.Len(t, db.queries, 2)
			assert.Contains(t, db.queries[0].sql, "status = 'active'")
			assert.Contains(t, db.queries[1].sql, "SELECT EXISTS")
			assert.Equal(t, []any{id}, db.queries[1].args)
		})
	}
}

func TestIncidentRepository_AppendAction_ClosedIncident(t *testing.T) {
	id := uuid.New()
	action := models.Action{Action: "Called security", Timestamp: time.Date(2026, 10, 17, 14, 0, 5, 0, time.UTC)}
	db := &stubQuerier{rows: []pgx.Row{
		stubRow{err: pgx.ErrNoRows},
		stubRow{values: []any{true}},
	}}
	repo := &IncidentRepository{db: db}

	incident, err := repo.AppendAction(context.Background(), id, action)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.True(t, errors.Is(err, apperror.ErrInvalidState))

	require.Len(t, db.queries, 2)
	assert.Contains(t, db.queries[0].sql, "actions_taken = actions_taken || $2::jsonb")
	assert.Contains(t, db.queries[0].sql, "WHERE id = $1 AND status = 'active'")

	var appended []models.Action
	require.NoError(t, json.Unmarshal(db.queries[0].args[1].([]byte), &appended))
	require.Len(t, appended, 1)
	assert.Equal(t, action.Action, appended[0].Action)
	assert.True(t, action.Timestamp.Equal(appended[0].Timestamp))
}

func TestIncidentRepository_AppendAction_MissingIncident(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{
		stubRow{err: pgx.ErrNoRows},
		stubRow{values: []any{false}},
	}}
	repo := &IncidentRepository{db: db}

	_, err := repo.AppendAction(context.Background(), uuid.New(), models.Action{Action: "Called security"})

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestIncidentRepository_Close_DriverErrors(t *testing.T) {
	t.Run("update fails", func(t *testing.T) {
		db := &stubQuerier{rows: []pgx.Row{stubRow{err: errors.New("connection reset")}}}
		repo := &IncidentRepository{db: db}

		_, err := repo.Close(context.Background(), uuid.New(), time.Now(), 1)

		require.Error(t, err)
		// Ошибка драйвера не классифицируется здесь, это делает сервис
		assert.Equal(t, apperror.Kind(""), apperror.KindOf(err))
		assert.Len(t, db.queries, 1)
	})

	t.Run("existence check fails", func(t *testing.T) {
		db := &stubQuerier{rows: []pgx.Row{
			stubRow{err: pgx.ErrNoRows},
			stubRow{err: errors.New("connection reset")},
		}}
		repo := &IncidentRepository{db: db}

		_, err := repo.Close(context.Background(), uuid.New(), time.Now(), 1)

		require.Error(t, err)
		assert.False(t, errors.Is(err, apperror.ErrNotFound))
		assert.False(t, errors.Is(err, apperror.ErrInvalidState))
	})
}

func TestIncidentRepository_GetByID_NotFound(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{stubRow{err: pgx.ErrNoRows}}}
	repo := &IncidentRepository{db: db}

	incident, err := repo.GetByID(context.Background(), uuid.New())

	assert.Nil(t, incident)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
