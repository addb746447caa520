package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hostelhub/hostel-backend/internal/cache"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

const (
	dashboardPrefix = "dashboard:"
	dashboardKey    = dashboardPrefix + "metrics"
)

// DashboardService serves aggregate counts with a short-lived cache in
// front of the database. A stale entry is acceptable for the TTL window.
type DashboardService struct {
	dash  repo.Dashboard
	cache cache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewDashboardService(dash repo.Dashboard, c cache.Cache, ttl time.Duration, log *slog.Logger) *DashboardService {
	return &DashboardService{dash: dash, cache: c, ttl: ttl, log: log}
}

func (s *DashboardService) Metrics(ctx context.Context) (models.DashboardMetrics, error) {
	if raw, err := s.cache.Get(ctx, dashboardKey); err == nil {
		var m models.DashboardMetrics
		if uerr := json.Unmarshal(raw, &m); uerr == nil {
			return m, nil
		}
		s.log.Warn("dashboard cache entry unreadable, refreshing")
	}

	m, err := s.dash.Metrics(ctx)
	if err != nil {
		return models.DashboardMetrics{}, err
	}

	if raw, err := json.Marshal(m); err == nil {
		if err := s.cache.Set(ctx, dashboardKey, raw, s.ttl); err != nil {
			s.log.Warn("dashboard cache write failed", "err", err)
		}
	}
	return m, nil
}

// Invalidate drops every cached dashboard entry so the next read recomputes.
// Booking and billing mutations call this; other writes age out via the TTL.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, dashboardPrefix); err != nil {
		s.log.Warn("dashboard cache invalidation failed", "err", err)
	}
}
