package debt

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles debt data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new debt repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const debtColumns = `d.id, d.batch_id, d.chapter_id, d.amount, d.description, d.debt_type, d.category,
	d.due_date, d.status, d.bank_name, d.bank_clabe, d.bank_account, d.bank_holder,
	d.proof_file_url, d.proof_uploaded_at, d.rejection_reason, d.created_at, d.updated_at`

func scanDebt(row interface{ Scan(...interface{}) error }, withChapterName bool) (*Debt, error) {
	debt := &Debt{}
	dest := []interface{}{
		&debt.ID,
		&debt.BatchID,
		&debt.ChapterID,
		&debt.Amount,
		&debt.Description,
		&debt.DebtType,
		&debt.Category,
		&debt.DueDate,
		&debt.Status,
		&debt.BankName,
		&debt.BankClabe,
		&debt.BankAccount,
		&debt.BankHolder,
		&debt.ProofFileURL,
		&debt.ProofUploadedAt,
		&debt.RejectionReason,
		&debt.CreatedAt,
		&debt.UpdatedAt,
	}
	if withChapterName {
		dest = append(dest, &debt.ChapterName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return debt, nil
}

// GetByID retrieves a debt by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Debt, error) {
	query := fmt.Sprintf(`
		SELECT %s, c.name
		FROM debts d
		JOIN chapters c ON d.chapter_id = c.id
		WHERE d.id = $1
	`, debtColumns)

	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id), true)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}

	return debt, nil
}

// ListFilter narrows a debt listing
type ListFilter struct {
	ChapterID *int64
	Status    *Status
	BatchID   *uuid.UUID
}

// List retrieves debts matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Debt, int, error) {
	where := `($1::BIGINT IS NULL OR d.chapter_id = $1)
		  AND ($2::TEXT IS NULL OR d.status = $2)
		  AND ($3::UUID IS NULL OR d.batch_id = $3)`

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM debts d WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, filter.ChapterID, filter.Status, filter.BatchID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count debts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, c.name
		FROM debts d
		JOIN chapters c ON d.chapter_id = c.id
		WHERE %s
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $4 OFFSET $5
	`, debtColumns, where)

	rows, err := r.db.QueryContext(ctx, query, filter.ChapterID, filter.Status, filter.BatchID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*Debt
	for rows.Next() {
		debt, err := scanDebt(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}

	return debts, total, nil
}

// AttachProof stores the uploaded proof reference and moves the debt
// into review. A previous rejection reason is cleared.
func (r *Repository) AttachProof(ctx context.Context, id int64, proofURL string) (*Debt, error) {
	query := fmt.Sprintf(`
		UPDATE debts d
		SET proof_file_url = $2,
		    proof_uploaded_at = NOW(),
		    rejection_reason = NULL,
		    status = $3,
		    updated_at = NOW()
		WHERE d.id = $1
		RETURNING %s
	`, debtColumns)

	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id, proofURL, StatusInReview), false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to attach proof: %w", err)
	}

	return debt, nil
}

// UpdateStatus updates the status of a debt
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, rejectionReason *string) (*Debt, error) {
	query := fmt.Sprintf(`
		UPDATE debts d
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE d.id = $1
		RETURNING %s
	`, debtColumns)

	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id, status, rejectionReason), false)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update debt status: %w", err)
	}

	return debt, nil
}

// MarkOverdue flips every pending debt whose due date has passed to
// OVERDUE and returns how many rows changed
func (r *Repository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE debts
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND due_date < $3
	`

	result, err := r.db.ExecContext(ctx, query, StatusOverdue, StatusPending, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue debts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
