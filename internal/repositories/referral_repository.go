package repositories

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferralRepository struct {
	DB *pgxpool.Pool
}

func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{DB: db}
}

func (r *ReferralRepository) Create(ctx context.Context, ref *models.Referral) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO referrals(name, phone, cases, success_rate, commission)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		ref.Name, ref.Phone, ref.Cases, ref.SuccessRate, ref.Commission,
	).Scan(&ref.ID, &ref.CreatedAt)
}

func (r *ReferralRepository) List(ctx context.Context) ([]*models.Referral, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, cases, success_rate, commission, created_at
         FROM referrals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var referrals []*models.Referral
	for rows.Next() {
		var ref models.Referral
		err := rows.Scan(&ref.ID, &ref.Name, &ref.Phone, &ref.Cases,
			&ref.SuccessRate, &ref.Commission, &ref.CreatedAt)
		if err != nil {
			return nil, err
		}
		referrals = append(referrals, &ref)
	}
	return referrals, rows.Err()
}

func (r *ReferralRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM referrals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
