package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elarca/treasury/internal/debt"
)

// RosterEntry is the snapshot of one active chapter at calculation time
type RosterEntry struct {
	ChapterID   int64
	ChapterName string
	MemberCount int
}

// PlanItem is one chapter's computed share of a distribution
type PlanItem struct {
	ChapterID      int64
	ChapterName    string
	MemberCount    int
	AssignedAmount decimal.Decimal
}

// Plan is the full result of a preview: the per-chapter shares plus
// the summary shown to the administrator before committing
type Plan struct {
	TotalAmount   decimal.Decimal
	TotalChapters int
	TotalMembers  int
	CostPerMember decimal.Decimal
	Items         []PlanItem
}

// Batch records one committed distribution. Every debt created by the
// commit references it, which is what makes a commit auditable and
// idempotent as a unit.
type Batch struct {
	ID             uuid.UUID       `json:"id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CostPerMember  decimal.Decimal `json:"cost_per_member"`
	DebtsCreated   int             `json:"debts_created"`
	Description    string          `json:"description"`
	DebtType       debt.Type       `json:"debt_type"`
	Category       *string         `json:"category,omitempty"`
	DueDate        time.Time       `json:"due_date"`
	BankName       string          `json:"bank_name"`
	BankClabe      *string         `json:"bank_clabe,omitempty"`
	BankAccount    *string         `json:"bank_account,omitempty"`
	BankHolder     string          `json:"bank_holder"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty"`
	CreatedBy      int64           `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DebtRecord is one debt row to be created by a commit. The shared
// metadata lives on the batch; only chapter and amount vary per row.
type DebtRecord struct {
	ChapterID int64
	Amount    decimal.Decimal
}

// ChapterRoster supplies the active-chapter snapshot a distribution is
// calculated against
type ChapterRoster interface {
	ActiveRoster(ctx context.Context) ([]RosterEntry, error)
}

// BatchStore persists committed distributions. CreateWithDebts must be
// all-or-nothing: on error no batch row and no debt row may remain.
type BatchStore interface {
	CreateWithDebts(ctx context.Context, batch *Batch, records []DebtRecord) error
	FindByIdempotencyKey(ctx context.Context, key string) (*Batch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Batch, error)
	List(ctx context.Context, limit, offset int) ([]*Batch, int, error)
}
