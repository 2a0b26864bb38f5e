package repositories

import (
	"context"
	"errors"
	"time"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, t *models.OnlineTransaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO online_transactions(order_id, case_number, customer, amount, status)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		t.OrderID, t.CaseNumber, t.Customer, t.Amount, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Settle marks the order paid and records the collection as a payment
// row in one transaction. A re-delivered webhook finds the order
// already paid and returns (nil, nil); if the payment insert fails the
// mark rolls back, so the next delivery retries the whole unit.
func (r *OnlineTransactionRepository) Settle(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var p models.Payment
	err = tx.QueryRow(ctx,
		`UPDATE online_transactions SET status='paid', payment_id=$1, updated_at=CURRENT_TIMESTAMP
         WHERE order_id=$2 AND status <> 'paid'
         RETURNING customer, case_number, amount`,
		paymentID, orderID,
	).Scan(&p.Customer, &p.CaseNumber, &p.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// already paid and recorded, or unknown order
			return nil, nil
		}
		return nil, err
	}

	p.Date = at
	p.Method = models.MethodOnline
	p.Status = models.PaymentCompleted
	p.CreatedBy = "razorpay"
	err = tx.QueryRow(ctx,
		`INSERT INTO payments(customer, case_number, amount, date, method, status, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		p.Customer, p.CaseNumber, p.Amount, p.Date, p.Method, p.Status, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID, reason string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions SET status='failed', failure_reason=$1, updated_at=CURRENT_TIMESTAMP
         WHERE order_id=$2 AND status <> 'paid'`,
		reason, orderID)
	return err
}

func (r *OnlineTransactionRepository) List(ctx context.Context) ([]*models.OnlineTransaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, order_id, case_number, customer, amount, status, payment_id, failure_reason,
                created_at, updated_at
         FROM online_transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*models.OnlineTransaction
	for rows.Next() {
		var t models.OnlineTransaction
		err := rows.Scan(&t.ID, &t.OrderID, &t.CaseNumber, &t.Customer, &t.Amount, &t.Status,
			&t.PaymentID, &t.FailureReason, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}
