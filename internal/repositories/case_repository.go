package repositories

import (
	"context"
	"fmt"

	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CaseRepository struct {
	DB *pgxpool.Pool
}

func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{DB: db}
}

const caseColumns = `c.id, c.case_number, c.name, c.phone, c.email, c.aadhaar, c.pan, c.cibil,
       c.address, c.problem, c.bank, c.other_bank, c.loan_type, c.account_number, c.issues,
       c.page_number, c.referred_person, c.telecaller_id, c.telecaller_name, c.status,
       c.assigned_to, COALESCE(u.first_name || ' ' || u.last_name, '') AS assigned_name,
       c.assigned_date, c.resolved_date, c.amount, c.cibil_before, c.cibil_after, c.priority,
       c.aadhaar_doc, c.pan_doc, c.account_statement_doc, c.payment_proof_doc,
       c.created_at, c.updated_at`

func scanCase(row interface{ Scan(...any) error }) (*models.Case, error) {
	var cs models.Case
	err := row.Scan(&cs.ID, &cs.CaseNumber, &cs.Name, &cs.Phone, &cs.Email, &cs.Aadhaar, &cs.Pan,
		&cs.Cibil, &cs.Address, &cs.Problem, &cs.Bank, &cs.OtherBank, &cs.LoanType,
		&cs.AccountNumber, &cs.Issues, &cs.PageNumber, &cs.ReferredPerson, &cs.TelecallerID,
		&cs.TelecallerName, &cs.Status, &cs.AssignedTo, &cs.AssignedName, &cs.AssignedDate,
		&cs.ResolvedDate, &cs.Amount, &cs.CibilBefore, &cs.CibilAfter, &cs.Priority,
		&cs.AadhaarDoc, &cs.PanDoc, &cs.AccountStatementDoc, &cs.PaymentProofDoc,
		&cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// GenerateCaseNumber draws the next number from a database sequence so
// concurrent creations can never observe the same "last" case.
func (r *CaseRepository) GenerateCaseNumber(ctx context.Context) (string, error) {
	var next int
	err := r.DB.QueryRow(ctx, "SELECT nextval('case_number_sequence')").Scan(&next)
	if err != nil {
		return "", fmt.Errorf("failed to get next case number: %w", err)
	}
	return fmt.Sprintf("CASE-%04d", next), nil
}

func (r *CaseRepository) Create(ctx context.Context, cs *models.Case) error {
	caseNumber, err := r.GenerateCaseNumber(ctx)
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx,
		`INSERT INTO cases(case_number, name, phone, email, aadhaar, pan, cibil, address, problem,
                bank, other_bank, loan_type, account_number, issues, page_number, referred_person,
                telecaller_id, telecaller_name, priority)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
         RETURNING id, status, created_at, updated_at`,
		caseNumber, cs.Name, cs.Phone, cs.Email, cs.Aadhaar, cs.Pan, cs.Cibil, cs.Address,
		cs.Problem, cs.Bank, cs.OtherBank, cs.LoanType, cs.AccountNumber, cs.Issues,
		cs.PageNumber, cs.ReferredPerson, cs.TelecallerID, cs.TelecallerName, cs.Priority,
	).Scan(&cs.ID, &cs.Status, &cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		return err
	}
	cs.CaseNumber = caseNumber
	return nil
}

func (r *CaseRepository) Get(ctx context.Context, id int) (*models.Case, error) {
	cs, err := scanCase(r.DB.QueryRow(ctx,
		`SELECT `+caseColumns+` FROM cases c LEFT JOIN users u ON c.assigned_to = u.id
         WHERE c.id=$1`, id))
	if err != nil {
		return nil, err
	}

	notes, err := r.ListNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	cs.Notes = notes
	return cs, nil
}

func (r *CaseRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*models.Case, error) {
	return scanCase(r.DB.QueryRow(ctx,
		`SELECT `+caseColumns+` FROM cases c LEFT JOIN users u ON c.assigned_to = u.id
         WHERE c.case_number=$1`, caseNumber))
}

func (r *CaseRepository) List(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases c LEFT JOIN users u ON c.assigned_to = u.id WHERE 1=1`
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND c.status=$%d", len(args))
	}
	if filter.AssignedTo != 0 {
		args = append(args, filter.AssignedTo)
		query += fmt.Sprintf(" AND c.assigned_to=$%d", len(args))
	}
	if filter.TelecallerID != 0 {
		args = append(args, filter.TelecallerID)
		query += fmt.Sprintf(" AND c.telecaller_id=$%d", len(args))
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		cs, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, cs)
	}
	return cases, rows.Err()
}

func (r *CaseRepository) Update(ctx context.Context, cs *models.Case) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cases SET name=$1, phone=$2, email=$3, aadhaar=$4, pan=$5, cibil=$6, address=$7,
                problem=$8, bank=$9, other_bank=$10, loan_type=$11, account_number=$12, issues=$13,
                page_number=$14, referred_person=$15, status=$16, amount=$17, priority=$18,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$19`,
		cs.Name, cs.Phone, cs.Email, cs.Aadhaar, cs.Pan, cs.Cibil, cs.Address, cs.Problem,
		cs.Bank, cs.OtherBank, cs.LoanType, cs.AccountNumber, cs.Issues, cs.PageNumber,
		cs.ReferredPerson, cs.Status, cs.Amount, cs.Priority, cs.ID)
	return err
}

func (r *CaseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Assign moves the case to In Progress and bumps the agent's workload
// counters in one transaction, so a crash cannot leave them apart.
func (r *CaseRepository) Assign(ctx context.Context, caseID, agentID int, amount float64, note string, addedBy string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := timeutil.Now()
	_, err = tx.Exec(ctx,
		`UPDATE cases SET assigned_to=$1, amount=$2, status=$3, assigned_date=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		agentID, amount, models.StatusInProgress, now, caseID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET assigned_cases = assigned_cases + 1, last_assignment=$1,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$2`,
		now, agentID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO case_notes(case_id, content, added_by) VALUES($1, $2, $3)`,
		caseID, note, addedBy)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Complete marks the case Solved and stores both CIBIL scores.
func (r *CaseRepository) Complete(ctx context.Context, caseID, cibilBefore, cibilAfter int, note string, addedBy string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE cases SET status=$1, cibil_before=$2, cibil_after=$3, resolved_date=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		models.StatusSolved, cibilBefore, cibilAfter, timeutil.Now(), caseID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO case_notes(case_id, content, added_by) VALUES($1, $2, $3)`,
		caseID, note, addedBy)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CaseRepository) AddNote(ctx context.Context, note *models.CaseNote) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO case_notes(case_id, content, added_by) VALUES($1, $2, $3)
         RETURNING id, added_at`,
		note.CaseID, note.Content, note.AddedBy,
	).Scan(&note.ID, &note.AddedAt)
}

func (r *CaseRepository) ListNotes(ctx context.Context, caseID int) ([]models.CaseNote, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, case_id, content, added_by, added_at FROM case_notes
         WHERE case_id=$1 ORDER BY added_at ASC`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.CaseNote
	for rows.Next() {
		var n models.CaseNote
		if err := rows.Scan(&n.ID, &n.CaseID, &n.Content, &n.AddedBy, &n.AddedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// SetDocument stores an uploaded filename in the matching document column.
func (r *CaseRepository) SetDocument(ctx context.Context, caseID int, field, filename string) error {
	column := map[string]string{
		"aadhaar":          "aadhaar_doc",
		"pan":              "pan_doc",
		"accountStatement": "account_statement_doc",
		"paymentProof":     "payment_proof_doc",
	}[field]
	if column == "" {
		return fmt.Errorf("unknown document field %q", field)
	}

	_, err := r.DB.Exec(ctx,
		`UPDATE cases SET `+column+`=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		filename, caseID)
	return err
}

// SetPaymentProof mirrors an offer's payment proof onto the case row.
func (r *CaseRepository) SetPaymentProof(ctx context.Context, caseID int, proofURL string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cases SET payment_proof_doc=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		proofURL, caseID)
	return err
}
