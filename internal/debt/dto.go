package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadProofRequest represents the request to attach a payment proof
type UploadProofRequest struct {
	ProofFileURL string `json:"proof_file_url" validate:"required,url"`
}

// RejectDebtRequest represents the request to reject a payment proof
type RejectDebtRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// DebtResponse represents the response for a debt
type DebtResponse struct {
	ID              int64           `json:"id"`
	BatchID         string          `json:"batch_id"`
	ChapterID       int64           `json:"chapter_id"`
	ChapterName     string          `json:"chapter_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	DebtType        Type            `json:"debt_type"`
	Category        *string         `json:"category,omitempty"`
	DueDate         string          `json:"due_date"`
	Status          Status          `json:"status"`
	BankName        string          `json:"bank_name"`
	BankClabe       *string         `json:"bank_clabe,omitempty"`
	BankAccount     *string         `json:"bank_account,omitempty"`
	BankHolder      string          `json:"bank_holder"`
	ProofFileURL    *string         `json:"proof_file_url,omitempty"`
	ProofUploadedAt *string         `json:"proof_uploaded_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// ToResponse converts a Debt model to a DebtResponse DTO
func (d *Debt) ToResponse() *DebtResponse {
	resp := &DebtResponse{
		ID:              d.ID,
		BatchID:         d.BatchID.String(),
		ChapterID:       d.ChapterID,
		ChapterName:     d.ChapterName,
		Amount:          d.Amount,
		Description:     d.Description,
		DebtType:        d.DebtType,
		Category:        d.Category,
		DueDate:         d.DueDate.Format("2006-01-02"),
		Status:          d.Status,
		BankName:        d.BankName,
		BankClabe:       d.BankClabe,
		BankAccount:     d.BankAccount,
		BankHolder:      d.BankHolder,
		ProofFileURL:    d.ProofFileURL,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.ProofUploadedAt != nil {
		uploaded := d.ProofUploadedAt.UTC().Format(time.RFC3339)
		resp.ProofUploadedAt = &uploaded
	}
	return resp
}
