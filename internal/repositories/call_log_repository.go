package repositories

import (
	"context"
	"time"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CallLogRepository struct {
	DB *pgxpool.Pool
}

func NewCallLogRepository(db *pgxpool.Pool) *CallLogRepository {
	return &CallLogRepository{DB: db}
}

func (r *CallLogRepository) Create(ctx context.Context, cl *models.CallLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO call_logs(time, customer, phone, duration, status, response, callback_time)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at`,
		cl.Time, cl.Customer, cl.Phone, cl.Duration, cl.Status, cl.Response, cl.CallbackTime,
	).Scan(&cl.ID, &cl.CreatedAt)
}

func (r *CallLogRepository) List(ctx context.Context, limit int) ([]*models.CallLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, time, customer, phone, duration, status, response, callback_time, created_at
         FROM call_logs ORDER BY time DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.CallLog
	for rows.Next() {
		var cl models.CallLog
		err := rows.Scan(&cl.ID, &cl.Time, &cl.Customer, &cl.Phone, &cl.Duration,
			&cl.Status, &cl.Response, &cl.CallbackTime, &cl.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &cl)
	}
	return logs, rows.Err()
}

// ListSince returns logs at or after the given instant, oldest first.
func (r *CallLogRepository) ListSince(ctx context.Context, since time.Time) ([]*models.CallLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, time, customer, phone, duration, status, response, callback_time, created_at
         FROM call_logs WHERE time >= $1 ORDER BY time ASC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.CallLog
	for rows.Next() {
		var cl models.CallLog
		err := rows.Scan(&cl.ID, &cl.Time, &cl.Customer, &cl.Phone, &cl.Duration,
			&cl.Status, &cl.Response, &cl.CallbackTime, &cl.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &cl)
	}
	return logs, rows.Err()
}
