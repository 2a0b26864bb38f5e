package repositories

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldDataRepository struct {
	DB *pgxpool.Pool
}

func NewFieldDataRepository(db *pgxpool.Pool) *FieldDataRepository {
	return &FieldDataRepository{DB: db}
}

func (r *FieldDataRepository) Create(ctx context.Context, fd *models.FieldData) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO field_data(bank_name, bank_area, manager_name, manager_phone,
                manager_type, executive_code, collection_data, marketing_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		fd.BankName, fd.BankArea, fd.ManagerName, fd.ManagerPhone,
		fd.ManagerType, fd.ExecutiveCode, fd.CollectionData, fd.MarketingID,
	).Scan(&fd.ID, &fd.CreatedAt)
}

func (r *FieldDataRepository) List(ctx context.Context, marketingID int) ([]*models.FieldData, error) {
	query := `SELECT id, bank_name, bank_area, manager_name, manager_phone, manager_type,
                     executive_code, collection_data, marketing_id, created_at
              FROM field_data`
	var args []any
	if marketingID != 0 {
		query += ` WHERE marketing_id=$1`
		args = append(args, marketingID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FieldData
	for rows.Next() {
		var fd models.FieldData
		err := rows.Scan(&fd.ID, &fd.BankName, &fd.BankArea, &fd.ManagerName, &fd.ManagerPhone,
			&fd.ManagerType, &fd.ExecutiveCode, &fd.CollectionData, &fd.MarketingID, &fd.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, &fd)
	}
	return records, rows.Err()
}

func (r *FieldDataRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM field_data WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
