package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
)

// StatsStore is the aggregation slice of the stats repository.
type StatsStore interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	CallStats(ctx context.Context) (*models.CallStats, error)
	AgentStats(ctx context.Context, agentID int) (*models.AgentStats, error)
	MarketingStats(ctx context.Context, marketingID int) (*models.MarketingStats, error)
	RecentActivity(ctx context.Context, limit int) ([]models.Activity, error)
	WeeklyMetrics(ctx context.Context) ([]models.WeeklyMetric, error)
}

// DashboardService shapes aggregation rows into dashboard payloads.
// Payloads are cached in Redis for five minutes; writes that change
// the numbers call cache.InvalidateStats.
type DashboardService struct {
	Stats StatsStore
}

func NewDashboardService(stats StatsStore) *DashboardService {
	return &DashboardService{Stats: stats}
}

// cachedJSON runs compute only on cache miss, storing the marshalled result.
func cachedJSON(ctx context.Context, key string, compute func() (any, error)) ([]byte, error) {
	if data, ok := cache.GetCachedStats(ctx, key); ok {
		return data, nil
	}
	payload, err := compute()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	cache.CacheStats(ctx, key, data)
	return data, nil
}

// CallStatCards returns the telecaller dashboard as presentation-ready cards.
func (s *DashboardService) CallStatCards(ctx context.Context) ([]byte, error) {
	return cachedJSON(ctx, cache.DashboardStatsKey, func() (any, error) {
		cs, err := s.Stats.CallStats(ctx)
		if err != nil {
			return nil, err
		}
		return []models.StatCard{
			{Icon: "phone", Label: "Today's Calls", Value: strconv.Itoa(cs.TodaysCalls)},
			{Icon: "phone-check", Label: "Responsive Calls", Value: strconv.Itoa(cs.ResponsiveCalls)},
			{Icon: "phone-off", Label: "No Response", Value: strconv.Itoa(cs.NoResponseCalls)},
			{Icon: "user-plus", Label: "Today's Leads", Value: strconv.Itoa(cs.TodaysLeads)},
			{Icon: "user-check", Label: "Converted Leads", Value: strconv.Itoa(cs.ConvertedLeads)},
			{Icon: "clock", Label: "Pending Followups", Value: strconv.Itoa(cs.PendingFollowup)},
		}, nil
	})
}

func (s *DashboardService) AdminStats(ctx context.Context) ([]byte, error) {
	return cachedJSON(ctx, cache.AdminStatsKey, func() (any, error) {
		return s.Stats.AdminStats(ctx)
	})
}

func (s *DashboardService) AgentStats(ctx context.Context, agentID int) ([]byte, error) {
	key := cache.AgentStatsKey(strconv.Itoa(agentID))
	return cachedJSON(ctx, key, func() (any, error) {
		return s.Stats.AgentStats(ctx, agentID)
	})
}

func (s *DashboardService) MarketingStats(ctx context.Context, marketingID int) ([]byte, error) {
	key := cache.MarketingStatsKey(strconv.Itoa(marketingID))
	return cachedJSON(ctx, key, func() (any, error) {
		return s.Stats.MarketingStats(ctx, marketingID)
	})
}

func (s *DashboardService) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	feed, err := s.Stats.RecentActivity(ctx, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity feed: %w", err)
	}
	return feed, nil
}

func (s *DashboardService) WeeklyMetrics(ctx context.Context) ([]models.WeeklyMetric, error) {
	return s.Stats.WeeklyMetrics(ctx)
}
