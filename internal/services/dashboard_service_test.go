package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostel-backend/internal/cache"
	"github.com/hostelhub/hostel-backend/internal/models"
)

type countingDashboard struct {
	calls   atomic.Int32
	metrics models.DashboardMetrics
}

func (d *countingDashboard) Metrics(_ context.Context) (models.DashboardMetrics, error) {
	d.calls.Add(1)
	return d.metrics, nil
}

func TestDashboardMetricsAreCached(t *testing.T) {
	dash := &countingDashboard{metrics: models.DashboardMetrics{
		TotalRooms:       12,
		RoomsAvailable:   7,
		RevenueCollected: 125000,
	}}
	svc := NewDashboardService(dash, cache.NewMemory(), time.Minute, testLogger())

	first, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), first.TotalRooms)

	second, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), dash.calls.Load(), "second read is served from cache")
}

func TestDashboardInvalidateForcesRecompute(t *testing.T) {
	dash := &countingDashboard{metrics: models.DashboardMetrics{TotalBookings: 3}}
	svc := NewDashboardService(dash, cache.NewMemory(), time.Minute, testLogger())

	_, err := svc.Metrics(context.Background())
	require.NoError(t, err)

	svc.Invalidate(context.Background())

	_, err = svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), dash.calls.Load())
}

func TestDashboardExpiredEntryRecomputes(t *testing.T) {
	dash := &countingDashboard{metrics: models.DashboardMetrics{TotalGuests: 9}}
	svc := NewDashboardService(dash, cache.NewMemory(), 10*time.Millisecond, testLogger())

	_, err := svc.Metrics(context.Background())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	m, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.TotalGuests)
	assert.Equal(t, int32(2), dash.calls.Load())
}
