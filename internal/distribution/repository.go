package distribution

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/elarca/treasury/internal/debt"
)

// Repository persists distribution batches and their debts in Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new distribution repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const batchColumns = `id, total_amount, cost_per_member, debts_created, description, debt_type, category,
	due_date, bank_name, bank_clabe, bank_account, bank_holder, idempotency_key, created_by, created_at`

// CreateWithDebts inserts the batch row and one debt row per record in
// a single transaction. The involved chapters are row-locked and
// re-verified as active inside the transaction, so a chapter being
// deactivated concurrently cannot end up with a debt. On any error the
// transaction rolls back and nothing is left behind.
//
// distribution_batches.idempotency_key carries a UNIQUE constraint, so
// of two concurrent commits with the same key only one insert can
// succeed; the loser's error is turned into a replay by the service.
func (r *Repository) CreateWithDebts(ctx context.Context, batch *Batch, records []DebtRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	chapterIDs := make([]int64, len(records))
	for i, record := range records {
		chapterIDs[i] = record.ChapterID
	}

	var activeCount int
	lockQuery := `SELECT COUNT(*) FROM (
		SELECT id FROM chapters WHERE id = ANY($1) AND is_active = TRUE FOR UPDATE
	) locked`
	if err := tx.QueryRowContext(ctx, lockQuery, pq.Array(chapterIDs)).Scan(&activeCount); err != nil {
		return fmt.Errorf("failed to lock chapters: %w", err)
	}
	if activeCount != len(records) {
		return fmt.Errorf("roster changed during commit: %d of %d chapters still active", activeCount, len(records))
	}

	batchQuery := fmt.Sprintf(`
		INSERT INTO distribution_batches (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING created_at
	`, batchColumns)

	err = tx.QueryRowContext(ctx, batchQuery,
		batch.ID,
		batch.TotalAmount,
		batch.CostPerMember,
		batch.DebtsCreated,
		batch.Description,
		batch.DebtType,
		batch.Category,
		batch.DueDate,
		batch.BankName,
		batch.BankClabe,
		batch.BankAccount,
		batch.BankHolder,
		batch.IdempotencyKey,
		batch.CreatedBy,
	).Scan(&batch.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}

	debtQuery := `
		INSERT INTO debts (batch_id, chapter_id, amount, description, debt_type, category,
			due_date, status, bank_name, bank_clabe, bank_account, bank_holder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, record := range records {
		_, err := tx.ExecContext(ctx, debtQuery,
			batch.ID,
			record.ChapterID,
			record.Amount,
			batch.Description,
			batch.DebtType,
			batch.Category,
			batch.DueDate,
			debt.StatusPending,
			batch.BankName,
			batch.BankClabe,
			batch.BankAccount,
			batch.BankHolder,
		)
		if err != nil {
			return fmt.Errorf("failed to create debt for chapter %d: %w", record.ChapterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindByIdempotencyKey retrieves the batch previously committed with
// the given key, or nil when the key is unseen
func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*Batch, error) {
	query := fmt.Sprintf(`SELECT %s FROM distribution_batches WHERE idempotency_key = $1`, batchColumns)

	batch, err := scanBatch(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	return batch, nil
}

// GetByID retrieves a batch by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Batch, error) {
	query := fmt.Sprintf(`SELECT %s FROM distribution_batches WHERE id = $1`, batchColumns)

	batch, err := scanBatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}

	return batch, nil
}

// List retrieves batches, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Batch, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM distribution_batches`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count batches: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM distribution_batches
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, batchColumns)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []*Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, batch)
	}

	return batches, total, nil
}

func scanBatch(row interface{ Scan(...interface{}) error }) (*Batch, error) {
	batch := &Batch{}
	err := row.Scan(
		&batch.ID,
		&batch.TotalAmount,
		&batch.CostPerMember,
		&batch.DebtsCreated,
		&batch.Description,
		&batch.DebtType,
		&batch.Category,
		&batch.DueDate,
		&batch.BankName,
		&batch.BankClabe,
		&batch.BankAccount,
		&batch.BankHolder,
		&batch.IdempotencyKey,
		&batch.CreatedBy,
		&batch.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

var _ BatchStore = (*Repository)(nil)
