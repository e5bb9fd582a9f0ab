package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the review status of a debt
type Status string

const (
	StatusPending  Status = "PENDING"   // created, waiting for payment proof
	StatusInReview Status = "IN_REVIEW" // proof uploaded, waiting for admin review
	StatusApproved Status = "APPROVED"  // terminal
	StatusOverdue  Status = "OVERDUE"   // due date passed without proof
)

// Type represents the kind of obligation a debt settles
type Type string

const (
	TypeDues         Type = "DUES"
	TypeFine         Type = "FINE"
	TypeContribution Type = "CONTRIBUTION"
)

// ValidType reports whether t is one of the known debt types
func ValidType(t Type) bool {
	switch t {
	case TypeDues, TypeFine, TypeContribution:
		return true
	}
	return false
}

// Debt represents one chapter's share of a committed distribution.
// Amount and chapter assignment are immutable after creation; only the
// status and proof fields change afterwards.
type Debt struct {
	ID              int64           `json:"id"`
	BatchID         uuid.UUID       `json:"batch_id"`
	ChapterID       int64           `json:"chapter_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	DebtType        Type            `json:"debt_type"`
	Category        *string         `json:"category,omitempty"`
	DueDate         time.Time       `json:"due_date"`
	Status          Status          `json:"status"`
	BankName        string          `json:"bank_name"`
	BankClabe       *string         `json:"bank_clabe,omitempty"`
	BankAccount     *string         `json:"bank_account,omitempty"`
	BankHolder      string          `json:"bank_holder"`
	ProofFileURL    *string         `json:"proof_file_url,omitempty"`
	ProofUploadedAt *time.Time      `json:"proof_uploaded_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Populated via JOIN
	ChapterName string `json:"chapter_name,omitempty"`
}

// CanTransitionTo reports whether a debt may move from its current
// status to next. APPROVED is terminal; OVERDUE debts can still submit
// a late proof.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInReview || next == StatusOverdue
	case StatusInReview:
		return next == StatusApproved || next == StatusPending
	case StatusOverdue:
		return next == StatusInReview
	default:
		return false
	}
}
