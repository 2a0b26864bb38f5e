package repositories

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO expenses(user_id, date, amount, advance, type, description)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		e.UserID, e.Date, e.Amount, e.Advance, e.Type, e.Description,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *ExpenseRepository) List(ctx context.Context, userID int) ([]*models.Expense, error) {
	query := `SELECT e.id, e.user_id, COALESCE(u.first_name || ' ' || u.last_name, '') AS user_name,
                     e.date, e.amount, e.advance, e.type, e.description, e.created_at
              FROM expenses e LEFT JOIN users u ON e.user_id = u.id`
	var args []any
	if userID != 0 {
		query += ` WHERE e.user_id=$1`
		args = append(args, userID)
	}
	query += ` ORDER BY e.date DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Date, &e.Amount, &e.Advance,
			&e.Type, &e.Description, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
