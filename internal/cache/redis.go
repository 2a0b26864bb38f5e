package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard cache keys
const (
	DashboardStatsKey = "dashboard:stats"
	AdminStatsKey     = "dashboard:admin"
	agentStatsKeyFmt  = "dashboard:agent:"
	marketingStatsFmt = "dashboard:marketing:"
	dashboardStatsTTL = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache degrades
// gracefully: every helper is a no-op when the client is nil.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of identifier+password for cache keys
func hashCredentials(identifier, password string) string {
	h := sha256.New()
	h.Write([]byte(identifier + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials were recently verified
func GetCachedAuth(ctx context.Context, identifier, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	userID, err := client.Get(ctx, hashCredentials(identifier, password)).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, identifier, password string, userID int64) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(identifier, password), userID, 15*time.Minute)
}

// GetCachedStats returns a cached dashboard payload if present
func GetCachedStats(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheStats caches a dashboard payload for 5 minutes
func CacheStats(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, dashboardStatsTTL)
}

// InvalidateStats drops all dashboard payloads. Called after every
// write that changes the numbers: cases, payments, offers, call logs,
// followups and field data. A variable so tests can observe the calls.
var InvalidateStats = func(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "dashboard:*", 50).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

// AgentStatsKey builds the per-agent dashboard cache key
func AgentStatsKey(agentID string) string {
	return agentStatsKeyFmt + agentID
}

// MarketingStatsKey builds the per-marketing-user dashboard cache key
func MarketingStatsKey(marketingID string) string {
	return marketingStatsFmt + marketingID
}
