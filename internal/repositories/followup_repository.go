package repositories

import (
	"context"
	"fmt"
	"strings"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowupRepository struct {
	DB *pgxpool.Pool
}

func NewFollowupRepository(db *pgxpool.Pool) *FollowupRepository {
	return &FollowupRepository{DB: db}
}

const followupColumns = `id, time, name, phone, response, issue_type, village, status,
       callback_time, created_at, updated_at`

func scanFollowup(row interface{ Scan(...any) error }) (*models.Followup, error) {
	var f models.Followup
	err := row.Scan(&f.ID, &f.Time, &f.Name, &f.Phone, &f.Response, &f.IssueType,
		&f.Village, &f.Status, &f.CallbackTime, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowupRepository) Create(ctx context.Context, f *models.Followup) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO followups(time, name, phone, response, issue_type, village, status, callback_time)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		f.Time, f.Name, f.Phone, f.Response, f.IssueType, f.Village, f.Status, f.CallbackTime,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FollowupRepository) Get(ctx context.Context, id int) (*models.Followup, error) {
	return scanFollowup(r.DB.QueryRow(ctx,
		`SELECT `+followupColumns+` FROM followups WHERE id=$1`, id))
}

func (r *FollowupRepository) List(ctx context.Context, status, phone string) ([]*models.Followup, error) {
	query := `SELECT ` + followupColumns + ` FROM followups`
	var conds []string
	var args []any
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if phone != "" {
		args = append(args, phone)
		conds = append(conds, fmt.Sprintf("phone=$%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY time DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followups []*models.Followup
	for rows.Next() {
		f, err := scanFollowup(rows)
		if err != nil {
			return nil, err
		}
		followups = append(followups, f)
	}
	return followups, rows.Err()
}

func (r *FollowupRepository) Update(ctx context.Context, f *models.Followup) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE followups SET response=$1, issue_type=$2, village=$3, status=$4,
                callback_time=$5, updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		f.Response, f.IssueType, f.Village, f.Status, f.CallbackTime, f.ID)
	return err
}

func (r *FollowupRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM followups WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
