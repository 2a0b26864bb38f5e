package repositories

import (
	"context"

	"recovery-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferRepository struct {
	DB *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{DB: db}
}

const offerColumns = `o.id, o.case_id, c.case_number, o.agent_id, o.deal_amount, o.advance_paid,
       o.pending_amount, o.case_status, o.payment_status, o.payment_proof_url, o.notes,
       o.created_at, o.updated_at`

func scanOffer(row interface{ Scan(...any) error }) (*models.Offer, error) {
	var o models.Offer
	err := row.Scan(&o.ID, &o.CaseID, &o.CaseNumber, &o.AgentID, &o.DealAmount, &o.AdvancePaid,
		&o.PendingAmount, &o.CaseStatus, &o.PaymentStatus, &o.PaymentProofURL, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the offer. The unique index on case_id rejects a
// second offer for the same case; callers check IsUniqueViolation.
func (r *OfferRepository) Create(ctx context.Context, o *models.Offer) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO offers(case_id, agent_id, deal_amount, advance_paid, pending_amount,
                case_status, payment_status, payment_proof_url, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		o.CaseID, o.AgentID, o.DealAmount, o.AdvancePaid, o.PendingAmount,
		o.CaseStatus, o.PaymentStatus, o.PaymentProofURL, o.Notes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OfferRepository) Get(ctx context.Context, id int) (*models.Offer, error) {
	return scanOffer(r.DB.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers o JOIN cases c ON o.case_id = c.id
         WHERE o.id=$1`, id))
}

func (r *OfferRepository) GetByCaseID(ctx context.Context, caseID int) (*models.Offer, error) {
	return scanOffer(r.DB.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers o JOIN cases c ON o.case_id = c.id
         WHERE o.case_id=$1`, caseID))
}

func (r *OfferRepository) List(ctx context.Context, agentID int) ([]*models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers o JOIN cases c ON o.case_id = c.id`
	var args []any
	if agentID != 0 {
		query += ` WHERE o.agent_id=$1`
		args = append(args, agentID)
	}
	query += ` ORDER BY o.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*models.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) Update(ctx context.Context, o *models.Offer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE offers SET deal_amount=$1, advance_paid=$2, pending_amount=$3, case_status=$4,
                payment_status=$5, payment_proof_url=$6, notes=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		o.DealAmount, o.AdvancePaid, o.PendingAmount, o.CaseStatus,
		o.PaymentStatus, o.PaymentProofURL, o.Notes, o.ID)
	return err
}

// DeleteOwned removes an offer only when it belongs to the given agent.
func (r *OfferRepository) DeleteOwned(ctx context.Context, id, agentID int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM offers WHERE id=$1 AND agent_id=$2`, id, agentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
