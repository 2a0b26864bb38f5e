package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthChecker struct {
	db *pgxpool.Pool
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}

	return DatabaseHealth{
		Status:       status,
		ResponseTime: responseTime,
	}
}

// DetailedStatus adds row counts the ops dashboard shows next to the
// probe status.
type DetailedStatus struct {
	HealthStatus
	Cases     int `json:"cases"`
	OpenCases int `json:"open_cases"`
	Users     int `json:"users"`
}

func (h *HealthChecker) CheckDetailed(ctx context.Context) DetailedStatus {
	detail := DetailedStatus{HealthStatus: h.CheckBasic()}

	h.db.QueryRow(ctx, "SELECT COUNT(*) FROM cases").Scan(&detail.Cases)
	h.db.QueryRow(ctx, "SELECT COUNT(*) FROM cases WHERE status <> 'Solved'").Scan(&detail.OpenCases)
	h.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&detail.Users)

	return detail
}
