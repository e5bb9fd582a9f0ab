package debt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Timestamps stored in a local zone must come out as real UTC instants,
// not local wall-clock values with a Z stuck on the end.
func TestDebtToResponseTimestamps(t *testing.T) {
	cdmx := time.FixedZone("America/Mexico_City", -6*60*60)
	uploaded := time.Date(2026, 3, 1, 18, 30, 0, 0, cdmx)
	proofURL := "https://cdn.example.com/proofs/77.pdf"

	d := &Debt{
		ID:              77,
		BatchID:         uuid.New(),
		ChapterID:       3,
		Amount:          decimal.NewFromInt(2500),
		Description:     "Cuota anual 2026",
		DebtType:        TypeDues,
		DueDate:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:          StatusInReview,
		BankName:        "BBVA",
		BankHolder:      "Tesoreria Nacional",
		ProofFileURL:    &proofURL,
		ProofUploadedAt: &uploaded,
		CreatedAt:       time.Date(2026, 2, 28, 23, 45, 0, 0, cdmx),
		UpdatedAt:       uploaded,
	}

	resp := d.ToResponse()

	if resp.CreatedAt != "2026-03-01T05:45:00Z" {
		t.Errorf("CreatedAt = %s, want 2026-03-01T05:45:00Z", resp.CreatedAt)
	}
	if resp.UpdatedAt != "2026-03-02T00:30:00Z" {
		t.Errorf("UpdatedAt = %s, want 2026-03-02T00:30:00Z", resp.UpdatedAt)
	}
	if resp.ProofUploadedAt == nil || *resp.ProofUploadedAt != "2026-03-02T00:30:00Z" {
		t.Errorf("ProofUploadedAt = %v, want 2026-03-02T00:30:00Z", resp.ProofUploadedAt)
	}
	if resp.DueDate != "2026-12-31" {
		t.Errorf("DueDate = %s, want 2026-12-31", resp.DueDate)
	}
}
