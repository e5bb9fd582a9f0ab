package distribution

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/elarca/treasury/internal/debt"
)

// PreviewRequest represents the request to preview a distribution
type PreviewRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
}

// CommitRequest represents the request to commit a distribution.
// At least one of bank_clabe/bank_account is required.
type CommitRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=255"`
	DebtType    debt.Type       `json:"debt_type" validate:"required,oneof=DUES FINE CONTRIBUTION"`
	Category    *string         `json:"category,omitempty"`
	DueDate     string          `json:"due_date" validate:"required"` // YYYY-MM-DD
	BankName    string          `json:"bank_name" validate:"required"`
	BankClabe   *string         `json:"bank_clabe,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	BankHolder  string          `json:"bank_holder" validate:"required"`
}

// PlanItemResponse represents one chapter's share in a preview response
type PlanItemResponse struct {
	ChapterID      int64           `json:"chapter_id"`
	ChapterName    string          `json:"chapter_name"`
	Members        int             `json:"members"`
	AssignedAmount decimal.Decimal `json:"assigned_amount"`
}

// PreviewResponse represents the response for a distribution preview
type PreviewResponse struct {
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	TotalChapters int                 `json:"total_chapters"`
	TotalMembers  int                 `json:"total_members"`
	CostPerMember decimal.Decimal     `json:"cost_per_member"`
	Distribution  []*PlanItemResponse `json:"distribution"`
}

// CommitResponse represents the response for a committed distribution
type CommitResponse struct {
	BatchID       string          `json:"batch_id"`
	DebtsCreated  int             `json:"debts_created"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CostPerMember decimal.Decimal `json:"cost_per_member"`
}

// BatchResponse represents the response for a distribution batch
type BatchResponse struct {
	ID            string          `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CostPerMember decimal.Decimal `json:"cost_per_member"`
	DebtsCreated  int             `json:"debts_created"`
	Description   string          `json:"description"`
	DebtType      debt.Type       `json:"debt_type"`
	Category      *string         `json:"category,omitempty"`
	DueDate       string          `json:"due_date"`
	BankName      string          `json:"bank_name"`
	BankClabe     *string         `json:"bank_clabe,omitempty"`
	BankAccount   *string         `json:"bank_account,omitempty"`
	BankHolder    string          `json:"bank_holder"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     string          `json:"created_at"`
}

// ToResponse converts a Plan to a PreviewResponse DTO
func (p *Plan) ToResponse() *PreviewResponse {
	items := make([]*PlanItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = &PlanItemResponse{
			ChapterID:      item.ChapterID,
			ChapterName:    item.ChapterName,
			Members:        item.MemberCount,
			AssignedAmount: item.AssignedAmount,
		}
	}

	return &PreviewResponse{
		TotalAmount:   p.TotalAmount,
		TotalChapters: p.TotalChapters,
		TotalMembers:  p.TotalMembers,
		CostPerMember: p.CostPerMember,
		Distribution:  items,
	}
}

// ToCommitResponse converts a Batch to a CommitResponse DTO
func (b *Batch) ToCommitResponse() *CommitResponse {
	return &CommitResponse{
		BatchID:       b.ID.String(),
		DebtsCreated:  b.DebtsCreated,
		TotalAmount:   b.TotalAmount,
		CostPerMember: b.CostPerMember,
	}
}

// ToResponse converts a Batch to a BatchResponse DTO
func (b *Batch) ToResponse() *BatchResponse {
	return &BatchResponse{
		ID:            b.ID.String(),
		TotalAmount:   b.TotalAmount,
		CostPerMember: b.CostPerMember,
		DebtsCreated:  b.DebtsCreated,
		Description:   b.Description,
		DebtType:      b.DebtType,
		Category:      b.Category,
		DueDate:       b.DueDate.Format("2006-01-02"),
		BankName:      b.BankName,
		BankClabe:     b.BankClabe,
		BankAccount:   b.BankAccount,
		BankHolder:    b.BankHolder,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
