package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/events"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/shenikar/safepoint/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardService(t *testing.T) (*dashboardService, *mocks.MockIncidentRepository, *mocks.MockChangeFeed) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	feedMock := mocks.NewMockChangeFeed(ctrl)

	svc := NewDashboardService(repoMock, feedMock, newTestLogger(), testPolicy).(*dashboardService)
	svc.now = func() time.Time { return t0 }
	return svc, repoMock, feedMock
}

func intPtr(v int) *int { return &v }

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, t0)

	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestComputeStats_ActiveAndClosedToday(t *testing.T) {
	incidents := []*models.Incident{
		{ID: uuid.New(), Status: models.IncidentActive, CreatedAt: t0.Add(-time.Hour)},
		{ID: uuid.New(), Status: models.IncidentClosed, CreatedAt: t0.Add(-2 * time.Hour), ResponseTimeSeconds: intPtr(90)},
	}

	stats := ComputeStats(incidents, t0)

	assert.Equal(t, models.DashboardStats{TodayCount: 2, AvgResponseTime: 90, ActiveCount: 1}, stats)
}

func TestComputeStats_YesterdayNotCountedAsToday(t *testing.T) {
	midnight := time.Date(t0.Year(), t0.Month(), t0.Day(), 0, 0, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{Status: models.IncidentClosed, CreatedAt: midnight.Add(-time.Second), ResponseTimeSeconds: intPtr(30)},
		{Status: models.IncidentClosed, CreatedAt: midnight, ResponseTimeSeconds: intPtr(61)},
	}

	stats := ComputeStats(incidents, t0)

	assert.Equal(t, 1, stats.TodayCount)
	// (30 + 61) / 2 = 45.5 округляется до 46
	assert.Equal(t, 46, stats.AvgResponseTime)
	assert.Equal(t, 0, stats.ActiveCount)
}

func TestComputeStats_UsesLocationOfNow(t *testing.T) {
	johannesburg := time.FixedZone("SAST", 2*60*60)
	// 23:30 UTC 16 октября - это уже 17 октября по SAST
	created := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, johannesburg)

	stats := ComputeStats([]*models.Incident{{Status: models.IncidentActive, CreatedAt: created}}, now)

	assert.Equal(t, 1, stats.TodayCount)
	assert.Equal(t, 1, stats.ActiveCount)
}

func TestComputeStats_ClosedWithoutResponseTimeIgnoredInAverage(t *testing.T) {
	incidents := []*models.Incident{
		{Status: models.IncidentClosed, CreatedAt: t0, ResponseTimeSeconds: intPtr(20)},
		{Status: models.IncidentClosed, CreatedAt: t0},
		nil,
	}

	stats := ComputeStats(incidents, t0)

	assert.Equal(t, 20, stats.AvgResponseTime)
	assert.Equal(t, 2, stats.TodayCount)
}

func TestStats_Success(t *testing.T) {
	service, repoMock, _ := newTestDashboardService(t)
	incidents := []*models.Incident{
		{Status: models.IncidentActive, CreatedAt: t0},
		{Status: models.IncidentClosed, CreatedAt: t0, ResponseTimeSeconds: intPtr(90)},
	}

	repoMock.EXPECT().ListForStats(gomock.Any()).Return(incidents, nil).Times(1)

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TodayCount: 2, AvgResponseTime: 90, ActiveCount: 1}, stats)
}

func TestStats_DataAccessError(t *testing.T) {
	service, repoMock, _ := newTestDashboardService(t)

	repoMock.EXPECT().ListForStats(gomock.Any()).Return(nil, errors.New("timeout")).Times(2)

	_, err := service.Stats(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrDataAccess))
}

func TestRecentIncidents_LimitNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "default on zero", limit: 0, expected: DefaultRecentLimit},
		{name: "default on negative", limit: -1, expected: DefaultRecentLimit},
		{name: "as requested", limit: 5, expected: 5},
		{name: "clamped", limit: 1000, expected: MaxRecentLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repoMock, _ := newTestDashboardService(t)
			repoMock.EXPECT().ListRecent(gomock.Any(), tc.expected).Return([]*models.IncidentSummary{}, nil).Times(1)

			incidents, err := service.RecentIncidents(context.Background(), tc.limit)

			require.NoError(t, err)
			assert.Empty(t, incidents)
		})
	}
}

func TestRecentIncidents_ReturnsRepositoryOrder(t *testing.T) {
	service, repoMock, _ := newTestDashboardService(t)
	newer := &models.IncidentSummary{Incident: models.Incident{ID: uuid.New(), CreatedAt: t0}, SafepointName: "Sandton Branch"}
	older := &models.IncidentSummary{Incident: models.Incident{ID: uuid.New(), CreatedAt: t0.Add(-time.Hour)}, SafepointName: "Rosebank Branch"}

	repoMock.EXPECT().ListRecent(gomock.Any(), 10).Return([]*models.IncidentSummary{newer, older}, nil)

	incidents, err := service.RecentIncidents(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, newer.ID, incidents[0].ID)
}

func TestSubscribe_DelegatesToFeed(t *testing.T) {
	service, _, feedMock := newTestDashboardService(t)
	unsubscribed := false

	feedMock.EXPECT().
		Subscribe(gomock.Any()).
		Return(func() { unsubscribed = true }).
		Times(1)

	unsubscribe := service.Subscribe(func(context.Context, events.ChangeEvent) {})
	unsubscribe()

	assert.True(t, unsubscribed)
}

func TestSubscribe_ReceivesIncidentChanges(t *testing.T) {
	sp := sandtonBranch()
	incidents, repo, _, bus := newScenarioIncidentService(sp)
	dashboard := NewDashboardService(repo, bus, newTestLogger(), testPolicy)
	ctx := context.Background()

	var received []events.ChangeEvent
	unsubscribe := dashboard.Subscribe(func(_ context.Context, e events.ChangeEvent) {
		received = append(received, e)
	})

	incident, err := incidents.OpenIncident(ctx, models.OpenIncidentInput{SafepointID: sp.ID, StaffID: "staff-1"})
	require.NoError(t, err)

	unsubscribe()
	_, err = incidents.CloseIncident(ctx, incident.ID)
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, events.IncidentOpened, received[0].Type)
	assert.Equal(t, incident.ID, received[0].IncidentID)
	assert.Equal(t, 0, bus.Len())
}
