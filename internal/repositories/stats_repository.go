package repositories

import (
	"context"
	"fmt"

	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository runs the dashboard aggregation queries. Day and week
// windows are computed in IST, which is what the office works in.
type StatsRepository struct {
	DB *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var s models.AdminStats
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*),
                COUNT(*) FILTER (WHERE status = 'Pending'),
                COUNT(*) FILTER (WHERE status = 'In Progress'),
                COUNT(*) FILTER (WHERE status = 'Solved')
         FROM cases`,
	).Scan(&s.TotalCases, &s.PendingCases, &s.InProgressCases, &s.SolvedCases)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE role = 'agent'),
                COUNT(*) FILTER (WHERE role = 'telecaller')
         FROM users`,
	).Scan(&s.TotalAgents, &s.TotalTelecallers)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'Completed'), 0) FROM payments`,
	).Scan(&s.TotalCollected)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(pending_amount), 0) FROM offers`,
	).Scan(&s.PendingSettlement)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending settlements: %w", err)
	}
	return &s, nil
}

func (r *StatsRepository) CallStats(ctx context.Context) (*models.CallStats, error) {
	dayStart := timeutil.StartOfDay(timeutil.Now())

	var s models.CallStats
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*),
                COUNT(*) FILTER (WHERE status IN ('Connected', 'Call Back')),
                COUNT(*) FILTER (WHERE status = 'Not Connected')
         FROM call_logs WHERE time >= $1`, dayStart,
	).Scan(&s.TodaysCalls, &s.ResponsiveCalls, &s.NoResponseCalls)
	if err != nil {
		return nil, fmt.Errorf("failed to count calls: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE created_at >= $1),
                COUNT(*) FILTER (WHERE status = 'Success'),
                COUNT(*) FILTER (WHERE status IN ('Pending', 'Call Back'))
         FROM followups`, dayStart,
	).Scan(&s.TodaysLeads, &s.ConvertedLeads, &s.PendingFollowup)
	if err != nil {
		return nil, fmt.Errorf("failed to count followups: %w", err)
	}
	return &s, nil
}

func (r *StatsRepository) AgentStats(ctx context.Context, agentID int) (*models.AgentStats, error) {
	s := models.AgentStats{AgentID: agentID}
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*),
                COUNT(*) FILTER (WHERE status = 'In Progress'),
                COUNT(*) FILTER (WHERE status = 'Solved'),
                COALESCE(AVG(cibil_after - cibil_before) FILTER (WHERE status = 'Solved' AND cibil_after > 0), 0)
         FROM cases WHERE assigned_to=$1`, agentID,
	).Scan(&s.AssignedCases, &s.InProgressCases, &s.SolvedCases, &s.AvgCibilGain)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate agent cases: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(advance_paid), 0) FROM offers WHERE agent_id=$1`, agentID,
	).Scan(&s.CollectedAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to sum agent collections: %w", err)
	}
	return &s, nil
}

func (r *StatsRepository) MarketingStats(ctx context.Context, marketingID int) (*models.MarketingStats, error) {
	now := timeutil.Now()
	dayStart := timeutil.StartOfDay(now)
	weekStart := timeutil.StartOfWeek(now)

	s := models.MarketingStats{MarketingID: marketingID}
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*),
                COUNT(*) FILTER (WHERE created_at >= $2),
                COUNT(*) FILTER (WHERE created_at >= $3)
         FROM field_data WHERE marketing_id=$1`, marketingID, dayStart, weekStart,
	).Scan(&s.TotalVisits, &s.TodayVisits, &s.WeekVisits)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate field visits: %w", err)
	}
	return &s, nil
}

// RecentActivity merges the latest call logs and case notes into one feed.
func (r *StatsRepository) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT type, summary, actor, at FROM (
             SELECT 'call' AS type, customer || ' (' || status || ')' AS summary,
                    '' AS actor, time AS at
             FROM call_logs
             UNION ALL
             SELECT 'note' AS type, content AS summary, added_by AS actor, added_at AS at
             FROM case_notes
         ) feed ORDER BY at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.Type, &a.Summary, &a.Actor, &a.At); err != nil {
			return nil, err
		}
		feed = append(feed, a)
	}
	return feed, rows.Err()
}

// WeeklyMetrics returns per-day counts for the last seven IST days,
// oldest day first. Days with no rows still appear with zero counts.
func (r *StatsRepository) WeeklyMetrics(ctx context.Context) ([]models.WeeklyMetric, error) {
	weekAgo := timeutil.StartOfDay(timeutil.Now()).AddDate(0, 0, -6)

	byDay := make(map[string]*models.WeeklyMetric)
	var order []string
	for i := 0; i < 7; i++ {
		day := weekAgo.AddDate(0, 0, i).Format("2006-01-02")
		byDay[day] = &models.WeeklyMetric{Day: day}
		order = append(order, day)
	}

	rows, err := r.DB.Query(ctx,
		`SELECT to_char(time AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD'), COUNT(*)
         FROM call_logs WHERE time >= $1 GROUP BY 1`, weekAgo)
	if err != nil {
		return nil, err
	}
	if err := collectDayCounts(rows, byDay, func(m *models.WeeklyMetric, n int) { m.Calls = n }); err != nil {
		return nil, err
	}

	rows, err = r.DB.Query(ctx,
		`SELECT to_char(created_at AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD'), COUNT(*)
         FROM followups WHERE created_at >= $1 GROUP BY 1`, weekAgo)
	if err != nil {
		return nil, err
	}
	if err := collectDayCounts(rows, byDay, func(m *models.WeeklyMetric, n int) { m.Leads = n }); err != nil {
		return nil, err
	}

	rows, err = r.DB.Query(ctx,
		`SELECT to_char(created_at AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD'), COUNT(*)
         FROM cases WHERE created_at >= $1 GROUP BY 1`, weekAgo)
	if err != nil {
		return nil, err
	}
	if err := collectDayCounts(rows, byDay, func(m *models.WeeklyMetric, n int) { m.Cases = n }); err != nil {
		return nil, err
	}

	metrics := make([]models.WeeklyMetric, 0, len(order))
	for _, day := range order {
		metrics = append(metrics, *byDay[day])
	}
	return metrics, nil
}

type dayRows interface {
	Next() bool
	Scan(...any) error
	Close()
	Err() error
}

func collectDayCounts(rows dayRows, byDay map[string]*models.WeeklyMetric, set func(*models.WeeklyMetric, int)) error {
	defer rows.Close()
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return err
		}
		if m, ok := byDay[day]; ok {
			set(m, count)
		}
	}
	return rows.Err()
}
