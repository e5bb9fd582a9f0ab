package distribution

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elarca/treasury/internal/debt"
)

// A batch created in a local zone must serialize its timestamp as a
// real UTC instant, not the local wall clock relabeled as UTC.
func TestBatchToResponseTimestamp(t *testing.T) {
	cdmx := time.FixedZone("America/Mexico_City", -6*60*60)
	b := &Batch{
		ID:            uuid.New(),
		TotalAmount:   dec("9000"),
		CostPerMember: dec("204.55"),
		DebtsCreated:  4,
		Description:   "Cuota anual 2026",
		DebtType:      debt.TypeDues,
		DueDate:       time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		BankName:      "BBVA",
		BankHolder:    "Tesoreria Nacional",
		CreatedBy:     7,
		CreatedAt:     time.Date(2026, 1, 15, 20, 0, 0, 0, cdmx),
	}

	resp := b.ToResponse()

	if resp.CreatedAt != "2026-01-16T02:00:00Z" {
		t.Errorf("CreatedAt = %s, want 2026-01-16T02:00:00Z", resp.CreatedAt)
	}
	if resp.DueDate != "2026-12-31" {
		t.Errorf("DueDate = %s, want 2026-12-31", resp.DueDate)
	}
}
