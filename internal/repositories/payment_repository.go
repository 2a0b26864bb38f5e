package repositories

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, customer, case_number, amount, date, method, status, proof,
       created_by, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.Customer, &p.CaseNumber, &p.Amount, &p.Date, &p.Method,
		&p.Status, &p.Proof, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(customer, case_number, amount, date, method, status, proof, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		p.Customer, p.CaseNumber, p.Amount, p.Date, p.Method, p.Status, p.Proof, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	return scanPayment(r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id))
}

func (r *PaymentRepository) List(ctx context.Context, caseNumber string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []any
	if caseNumber != "" {
		query += ` WHERE case_number=$1`
		args = append(args, caseNumber)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET customer=$1, case_number=$2, amount=$3, date=$4, method=$5,
                status=$6, proof=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		p.Customer, p.CaseNumber, p.Amount, p.Date, p.Method, p.Status, p.Proof, p.ID)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
