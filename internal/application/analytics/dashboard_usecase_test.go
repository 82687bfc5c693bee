package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/analytics"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
)

// fakeAnalyticsRepo agregados fijos con conteo de consultas.
type fakeAnalyticsRepo struct {
	onHand       decimal.Decimal
	openLeaks    int64
	unattributed int64
	resolved     int64

	calls    int
	failWith error

	lastResolvedSince time.Time
}

func (f *fakeAnalyticsRepo) TotalPartsOnHand(_ context.Context) (decimal.Decimal, error) {
	f.calls++
	if f.failWith != nil {
		return decimal.Zero, f.failWith
	}
	return f.onHand, nil
}

func (f *fakeAnalyticsRepo) CountOpenLeaks(_ context.Context) (int64, error) {
	f.calls++
	return f.openLeaks, f.failWith
}

func (f *fakeAnalyticsRepo) CountUnattributedMovements(_ context.Context) (int64, error) {
	f.calls++
	return f.unattributed, f.failWith
}

func (f *fakeAnalyticsRepo) CountResolvedSince(_ context.Context, since time.Time) (int64, error) {
	f.calls++
	f.lastResolvedSince = since
	return f.resolved, f.failWith
}

// fakeCache caché en memoria con fallos inyectables.
type fakeCache struct {
	data     map[string][]byte
	getErr   error
	setCalls int
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string][]byte)} }

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.setCalls++
	c.data[key] = value
	return nil
}

func newRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		onHand:       decimal.RequireFromString("1234.5"),
		openLeaks:    12,
		unattributed: 4,
		resolved:     7,
	}
}

func TestGetSummary_SinCache(t *testing.T) {
	repo := newRepo()
	uc := analytics.NewDashboardUseCase(repo, nil)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, got.TotalPartsOnHand.Equal(decimal.RequireFromString("1234.5")))
	assert.Equal(t, int64(12), got.OpenLeaks)
	assert.Equal(t, int64(4), got.UnattributedMovements)
	assert.Equal(t, int64(7), got.ResolvedLastSevenDays)
	assert.NotEmpty(t, got.GeneratedAt)
	assert.Equal(t, 4, repo.calls, "cuatro agregados, una consulta cada uno")

	// La ventana de resueltos es de 7 días hacia atrás.
	assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), repo.lastResolvedSince, 5*time.Second)
}

func TestGetSummary_PueblaYUsaElCache(t *testing.T) {
	repo := newRepo()
	cache := newFakeCache()
	uc := analytics.NewDashboardUseCase(repo, cache)

	first, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.setCalls, "el miss repuebla el caché")
	assert.Equal(t, 4, repo.calls)

	second, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, repo.calls, "el hit no vuelve al store")
	assert.Equal(t, first.OpenLeaks, second.OpenLeaks)
	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
}

// Un fallo de caché degrada a recálculo, nunca a error.
func TestGetSummary_FalloDeCacheNoEsFatal(t *testing.T) {
	repo := newRepo()
	cache := newFakeCache()
	cache.getErr = errors.New("redis caído")
	uc := analytics.NewDashboardUseCase(repo, cache)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.OpenLeaks)
}

// Una entrada corrupta en caché se ignora y se recalcula.
func TestGetSummary_CacheCorruptoSeIgnora(t *testing.T) {
	repo := newRepo()
	cache := newFakeCache()
	cache.data["dashboard:summary"] = []byte("{no es json")
	uc := analytics.NewDashboardUseCase(repo, cache)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.OpenLeaks)
	assert.Equal(t, 4, repo.calls)

	// Y la entrada queda reescrita con JSON válido.
	var repaired dto.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal(cache.data["dashboard:summary"], &repaired))
	assert.Equal(t, int64(12), repaired.OpenLeaks)
}

func TestGetSummary_FalloDelStoreSePropaga(t *testing.T) {
	repo := newRepo()
	repo.failWith = errors.New("conexión rechazada")
	uc := analytics.NewDashboardUseCase(repo, nil)

	got, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}
