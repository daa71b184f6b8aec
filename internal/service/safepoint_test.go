package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/shenikar/safepoint/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFallbackPhrase = "Is Angela on shift?"

func newTestSafepointService(t *testing.T, cacheTTL time.Duration) (SafepointService, *mocks.MockSafepointRepository, *mocks.MockConfigRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSafepointRepository(ctrl)
	configMock := mocks.NewMockConfigRepository(ctrl)

	svc := NewSafepointService(repoMock, configMock, newTestLogger(), SafepointOptions{
		CacheTTL:           cacheTTL,
		CodePhraseFallback: testFallbackPhrase,
		Policy:             testPolicy,
	})
	return svc, repoMock, configMock
}

// johannesburgSafepoints - справочник для тестов ранжирования
func johannesburgSafepoints() []*models.Safepoint {
	mk := func(name string, typ models.SafepointType, lat, lon float64) *models.Safepoint {
		return &models.Safepoint{ID: uuid.New(), Name: name, Type: typ, City: "Johannesburg", Latitude: lat, Longitude: lon, IsActive: true}
	}
	return []*models.Safepoint{
		mk("Braamfontein ATM", models.SafepointATM, -26.1929, 28.0305),
		mk("Rosebank Branch", models.SafepointBranch, -26.1452, 28.0436),
		mk("Sandton Branch", models.SafepointBranch, -26.1076, 28.0567),
		mk("Soweto Merchant", models.SafepointMerchant, -26.2485, 27.8540),
		mk("Randburg ATM", models.SafepointATM, -26.0936, 28.0064),
		mk("Midrand Branch", models.SafepointBranch, -25.9992, 28.1263),
	}
}

func TestListSafepoints_Success(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)
	ctx := context.Background()
	expected := johannesburgSafepoints()

	repoMock.EXPECT().ListActive(gomock.Any(), "Johannesburg").Return(expected, nil).Times(1)

	safepoints, err := service.ListSafepoints(ctx, "Johannesburg")

	require.NoError(t, err)
	assert.Equal(t, expected, safepoints)
}

func TestListSafepoints_EmptyCity(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)

	repoMock.EXPECT().ListActive(gomock.Any(), "").Return([]*models.Safepoint{}, nil).Times(1)

	safepoints, err := service.ListSafepoints(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, safepoints)
}

func TestListSafepoints_DataAccessError(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)

	// Обе попытки неудачны
	repoMock.EXPECT().ListActive(gomock.Any(), "").Return(nil, errors.New("connection refused")).Times(2)

	_, err := service.ListSafepoints(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrDataAccess))
}

func TestListSafepoints_RetriesThenSucceeds(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)
	expected := johannesburgSafepoints()

	gomock.InOrder(
		repoMock.EXPECT().ListActive(gomock.Any(), "").Return(nil, errors.New("connection reset")),
		repoMock.EXPECT().ListActive(gomock.Any(), "").Return(expected, nil),
	)

	safepoints, err := service.ListSafepoints(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, safepoints, len(expected))
}

func TestListSafepoints_Cached(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, time.Minute)
	expected := johannesburgSafepoints()

	// Второй вызов обслуживается из кеша
	repoMock.EXPECT().ListActive(gomock.Any(), "Johannesburg").Return(expected, nil).Times(1)

	first, err := service.ListSafepoints(context.Background(), "Johannesburg")
	require.NoError(t, err)
	second, err := service.ListSafepoints(context.Background(), "Johannesburg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNearestSafepoints_OrderedByDistance(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)
	all := johannesburgSafepoints()

	repoMock.EXPECT().ListActive(gomock.Any(), "").Return(all, nil).Times(1)

	ranked, err := service.NearestSafepoints(context.Background(), -26.1076, 28.0567, 3)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Sandton Branch", ranked[0].Name)
	assert.InDelta(t, 0, ranked[0].DistanceKm, 1e-9)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
	}
}

func TestNearestSafepoints_DefaultLimit(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)

	repoMock.EXPECT().ListActive(gomock.Any(), "").Return(johannesburgSafepoints(), nil).Times(2)

	ranked, err := service.NearestSafepoints(context.Background(), -26.2041, 28.0473, 0)
	require.NoError(t, err)
	assert.Len(t, ranked, DefaultNearestLimit)

	ranked, err = service.NearestSafepoints(context.Background(), -26.2041, 28.0473, -5)
	require.NoError(t, err)
	assert.Len(t, ranked, DefaultNearestLimit)
}

func TestNearestSafepoints_LimitLargerThanDirectory(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)
	all := johannesburgSafepoints()

	repoMock.EXPECT().ListActive(gomock.Any(), "").Return(all, nil)

	ranked, err := service.NearestSafepoints(context.Background(), -26.2041, 28.0473, 50)

	require.NoError(t, err)
	assert.Len(t, ranked, len(all))
}

func TestNearestSafepoints_EmptyDirectory(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)

	repoMock.EXPECT().ListActive(gomock.Any(), "").Return(nil, nil)

	ranked, err := service.NearestSafepoints(context.Background(), -26.2041, 28.0473, 3)

	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestNearestSafepoints_InvalidCoordinates(t *testing.T) {
	testCases := []struct {
		name     string
		lat, lon float64
	}{
		{name: "latitude too low", lat: -90.5, lon: 28},
		{name: "latitude too high", lat: 91, lon: 28},
		{name: "longitude too low", lat: -26, lon: -181},
		{name: "longitude too high", lat: -26, lon: 180.01},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repoMock, _ := newTestSafepointService(t, 0)
			repoMock.EXPECT().ListActive(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.NearestSafepoints(context.Background(), tc.lat, tc.lon, 3)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
		})
	}
}

func TestRankByDistance_TiesBrokenByID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")
	safepoints := []*models.Safepoint{
		{ID: high, Name: "Twin B", Latitude: -26.1, Longitude: 28.0, IsActive: true},
		{ID: low, Name: "Twin A", Latitude: -26.1, Longitude: 28.0, IsActive: true},
	}

	ranked := RankByDistance(safepoints, -26.2, 28.1)

	require.Len(t, ranked, 2)
	assert.Equal(t, low, ranked[0].ID)
	assert.Equal(t, high, ranked[1].ID)
	assert.Equal(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
}

func TestRankByDistance_AntipodalPointRankedLast(t *testing.T) {
	near := uuid.New()
	antipode := uuid.New()
	safepoints := []*models.Safepoint{
		{ID: antipode, Name: "Antipode", Latitude: 88.5, Longitude: 0.5, IsActive: true},
		{ID: near, Name: "Near", Latitude: -88.0, Longitude: -179.0, IsActive: true},
	}

	ranked := RankByDistance(safepoints, -88.5, -179.5)

	require.Len(t, ranked, 2)
	assert.Equal(t, near, ranked[0].ID)
	assert.Equal(t, antipode, ranked[1].ID)
	assert.False(t, math.IsNaN(ranked[1].DistanceKm))
}

func TestRankByDistance_SkipsInactive(t *testing.T) {
	safepoints := johannesburgSafepoints()
	safepoints[2].IsActive = false

	ranked := RankByDistance(safepoints, -26.1076, 28.0567)

	assert.Len(t, ranked, len(safepoints)-1)
	for _, r := range ranked {
		assert.NotEqual(t, "Sandton Branch", r.Name)
	}
}

func TestGetSafepoint_NotFound(t *testing.T) {
	service, repoMock, _ := newTestSafepointService(t, 0)
	id := uuid.New()

	// NotFound не повторяется
	repoMock.EXPECT().
		GetActiveByID(gomock.Any(), id).
		Return(nil, apperror.NotFound("repository.GetActiveByID", "safepoint %s not found", id)).
		Times(1)

	_, err := service.GetSafepoint(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCodePhrase_FromConfig(t *testing.T) {
	service, _, configMock := newTestSafepointService(t, 0)

	configMock.EXPECT().GetValue(gomock.Any(), CodePhraseKey).Return("Is Thandi in today?", nil)

	assert.Equal(t, "Is Thandi in today?", service.CodePhrase(context.Background()))
}

func TestCodePhrase_Fallback(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		err   error
		calls int
	}{
		{name: "missing key", err: apperror.NotFound("repository.GetValue", "config key not found"), calls: 1},
		{name: "empty value", value: "", calls: 1},
		{name: "store unavailable", err: errors.New("connection refused"), calls: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, configMock := newTestSafepointService(t, 0)
			configMock.EXPECT().GetValue(gomock.Any(), CodePhraseKey).Return(tc.value, tc.err).Times(tc.calls)

			assert.Equal(t, testFallbackPhrase, service.CodePhrase(context.Background()))
		})
	}
}

func TestCodePhrase_Cached(t *testing.T) {
	service, _, configMock := newTestSafepointService(t, time.Minute)

	configMock.EXPECT().GetValue(gomock.Any(), CodePhraseKey).Return("Is Thandi in today?", nil).Times(1)

	assert.Equal(t, "Is Thandi in today?", service.CodePhrase(context.Background()))
	assert.Equal(t, "Is Thandi in today?", service.CodePhrase(context.Background()))
}
