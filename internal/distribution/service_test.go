package distribution

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elarca/treasury/internal/debt"
)

// fakeRoster is an in-memory ChapterRoster that counts how often the
// snapshot is read
type fakeRoster struct {
	entries []RosterEntry
	err     error
	calls   int
}

func (f *fakeRoster) ActiveRoster(ctx context.Context) ([]RosterEntry, error) {
	f.calls++
	return f.entries, f.err
}

// fakeStore is an in-memory BatchStore that mimics the all-or-nothing
// transaction: rows are staged per commit and discarded when the
// configured insert fails.
type fakeStore struct {
	batches     []*Batch
	debts       []DebtRecord
	createCalls int
	failOnDebt  int    // 1-based index of the debt insert that fails; 0 = never
	createErr   error  // returned by CreateWithDebts before staging anything
	raced       *Batch // a concurrent writer's batch, visible only after a create attempt
}

var errInsertFailed = errors.New("insert failed: connection reset")

func (f *fakeStore) CreateWithDebts(ctx context.Context, batch *Batch, records []DebtRecord) error {
	f.createCalls++

	if f.createErr != nil {
		return f.createErr
	}

	staged := make([]DebtRecord, 0, len(records))
	for i, record := range records {
		if f.failOnDebt == i+1 {
			return errInsertFailed
		}
		staged = append(staged, record)
	}

	f.batches = append(f.batches, batch)
	f.debts = append(f.debts, staged...)
	return nil
}

func (f *fakeStore) FindByIdempotencyKey(ctx context.Context, key string) (*Batch, error) {
	if f.raced != nil && f.createCalls > 0 && f.raced.IdempotencyKey != nil && *f.raced.IdempotencyKey == key {
		return f.raced, nil
	}
	for _, batch := range f.batches {
		if batch.IdempotencyKey != nil && *batch.IdempotencyKey == key {
			return batch, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*Batch, error) {
	for _, batch := range f.batches {
		if batch.ID == id {
			return batch, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(ctx context.Context, limit, offset int) ([]*Batch, int, error) {
	return f.batches, len(f.batches), nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string {
	return &s
}

func fourChapterRoster() []RosterEntry {
	return []RosterEntry{
		{ChapterID: 1, ChapterName: "Norte", MemberCount: 14},
		{ChapterID: 2, ChapterName: "Sur", MemberCount: 10},
		{ChapterID: 3, ChapterName: "Centro", MemberCount: 12},
		{ChapterID: 4, ChapterName: "Occidente", MemberCount: 8},
	}
}

func validCommitRequest() *CommitRequest {
	return &CommitRequest{
		TotalAmount: dec("9000"),
		Description: "Cuota anual 2026",
		DebtType:    debt.TypeDues,
		DueDate:     "2026-12-31",
		BankName:    "BBVA",
		BankClabe:   strPtr("012345678901234567"),
		BankHolder:  "Tesoreria Nacional",
	}
}

func TestPreview(t *testing.T) {
	roster := &fakeRoster{entries: fourChapterRoster()}
	service := NewService(roster, &fakeStore{})

	plan, err := service.Preview(context.Background(), dec("9000"))
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}

	if plan.TotalChapters != 4 {
		t.Errorf("TotalChapters = %d, want 4", plan.TotalChapters)
	}
	if plan.TotalMembers != 44 {
		t.Errorf("TotalMembers = %d, want 44", plan.TotalMembers)
	}
	if !plan.CostPerMember.Equal(dec("204.55")) {
		t.Errorf("CostPerMember = %s, want 204.55", plan.CostPerMember)
	}

	wantAmounts := []string{"2863.64", "2045.45", "2454.55", "1636.36"}
	sum := decimal.Zero
	for i, item := range plan.Items {
		if !item.AssignedAmount.Equal(dec(wantAmounts[i])) {
			t.Errorf("item %d (%s) amount = %s, want %s", i, item.ChapterName, item.AssignedAmount, wantAmounts[i])
		}
		sum = sum.Add(item.AssignedAmount)
	}
	if !sum.Equal(dec("9000")) {
		t.Errorf("plan amounts sum to %s, want exactly 9000", sum)
	}
}

func TestPreviewInvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative", "-100"},
		{"over the cap", "10000000.01"},
		{"sub-cent precision", "100.005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := &fakeRoster{entries: fourChapterRoster()}
			service := NewService(roster, &fakeStore{})

			_, err := service.Preview(context.Background(), dec(tt.amount))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Preview(%s) error = %v, want ErrInvalidInput", tt.amount, err)
			}
			if roster.calls != 0 {
				t.Errorf("roster read %d times on invalid input, want 0", roster.calls)
			}
		})
	}
}

func TestPreviewAmountTooSmallForRoster(t *testing.T) {
	entries := make([]RosterEntry, 10)
	for i := range entries {
		entries[i] = RosterEntry{ChapterID: int64(i + 1), ChapterName: fmt.Sprintf("Capitulo %d", i+1), MemberCount: 1}
	}
	service := NewService(&fakeRoster{entries: entries}, &fakeStore{})

	_, err := service.Preview(context.Background(), dec("0.05"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Preview() error = %v, want ErrInvalidInput", err)
	}
}

func TestPreviewEmptyRoster(t *testing.T) {
	service := NewService(&fakeRoster{}, &fakeStore{})

	_, err := service.Preview(context.Background(), dec("1000"))
	if !errors.Is(err, ErrNoActiveChapters) {
		t.Fatalf("Preview() error = %v, want ErrNoActiveChapters", err)
	}
}

func TestPreviewNoMembers(t *testing.T) {
	roster := &fakeRoster{entries: []RosterEntry{
		{ChapterID: 1, ChapterName: "Norte", MemberCount: 0},
		{ChapterID: 2, ChapterName: "Sur", MemberCount: 0},
	}}
	service := NewService(roster, &fakeStore{})

	_, err := service.Preview(context.Background(), dec("1000"))
	if !errors.Is(err, ErrNoMembers) {
		t.Fatalf("Preview() error = %v, want ErrNoMembers", err)
	}
}

func TestCommit(t *testing.T) {
	roster := &fakeRoster{entries: fourChapterRoster()}
	store := &fakeStore{}
	service := NewService(roster, store)

	batch, replayed, err := service.Commit(context.Background(), 7, "", validCommitRequest())
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if replayed {
		t.Error("fresh commit reported as replayed")
	}

	if batch.DebtsCreated != 4 {
		t.Errorf("DebtsCreated = %d, want 4", batch.DebtsCreated)
	}
	if batch.CreatedBy != 7 {
		t.Errorf("CreatedBy = %d, want 7", batch.CreatedBy)
	}
	if !batch.CostPerMember.Equal(dec("204.55")) {
		t.Errorf("CostPerMember = %s, want 204.55", batch.CostPerMember)
	}

	if len(store.debts) != 4 {
		t.Fatalf("store holds %d debts, want 4", len(store.debts))
	}
	sum := decimal.Zero
	for _, record := range store.debts {
		sum = sum.Add(record.Amount)
	}
	if !sum.Equal(dec("9000")) {
		t.Errorf("persisted amounts sum to %s, want exactly 9000", sum)
	}
}

func TestCommitBankingValidationBeforeRosterRead(t *testing.T) {
	roster := &fakeRoster{entries: fourChapterRoster()}
	store := &fakeStore{}
	service := NewService(roster, store)

	req := validCommitRequest()
	req.BankClabe = nil
	req.BankAccount = strPtr("")

	_, _, err := service.Commit(context.Background(), 7, "", req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Commit() error = %v, want ErrInvalidInput", err)
	}

	if roster.calls != 0 {
		t.Errorf("roster read %d times before validation failure, want 0", roster.calls)
	}
	if store.createCalls != 0 {
		t.Errorf("store called %d times before validation failure, want 0", store.createCalls)
	}
}

func TestCommitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CommitRequest)
	}{
		{"missing description", func(r *CommitRequest) { r.Description = "" }},
		{"unknown debt type", func(r *CommitRequest) { r.DebtType = "LOAN" }},
		{"missing bank name", func(r *CommitRequest) { r.BankName = "" }},
		{"missing bank holder", func(r *CommitRequest) { r.BankHolder = "" }},
		{"malformed due date", func(r *CommitRequest) { r.DueDate = "31/12/2026" }},
		{"amount over cap", func(r *CommitRequest) { r.TotalAmount = dec("10000001") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&fakeRoster{entries: fourChapterRoster()}, &fakeStore{})

			req := validCommitRequest()
			tt.mutate(req)

			_, _, err := service.Commit(context.Background(), 7, "", req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Commit() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCommitAtomicity(t *testing.T) {
	roster := &fakeRoster{entries: []RosterEntry{
		{ChapterID: 1, ChapterName: "Norte", MemberCount: 5},
		{ChapterID: 2, ChapterName: "Sur", MemberCount: 5},
		{ChapterID: 3, ChapterName: "Centro", MemberCount: 5},
		{ChapterID: 4, ChapterName: "Occidente", MemberCount: 5},
		{ChapterID: 5, ChapterName: "Oriente", MemberCount: 5},
	}}
	store := &fakeStore{failOnDebt: 5}
	service := NewService(roster, store)

	_, _, err := service.Commit(context.Background(), 7, "", validCommitRequest())
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("Commit() error = %v, want ErrPersistenceFailure", err)
	}

	if len(store.debts) != 0 {
		t.Errorf("store holds %d debts after failed commit, want 0", len(store.debts))
	}
	if len(store.batches) != 0 {
		t.Errorf("store holds %d batches after failed commit, want 0", len(store.batches))
	}
}

func TestCommitIdempotencyReplay(t *testing.T) {
	roster := &fakeRoster{entries: fourChapterRoster()}
	store := &fakeStore{}
	service := NewService(roster, store)

	first, replayed, err := service.Commit(context.Background(), 7, "key-123", validCommitRequest())
	if err != nil {
		t.Fatalf("first Commit() error: %v", err)
	}
	if replayed {
		t.Fatal("first commit reported as replayed")
	}

	second, replayed, err := service.Commit(context.Background(), 7, "key-123", validCommitRequest())
	if err != nil {
		t.Fatalf("second Commit() error: %v", err)
	}
	if !replayed {
		t.Error("repeated key not reported as replayed")
	}
	if second.ID != first.ID {
		t.Errorf("replay returned batch %s, want %s", second.ID, first.ID)
	}

	if store.createCalls != 1 {
		t.Errorf("store created %d batches for one key, want 1", store.createCalls)
	}
	if len(store.debts) != 4 {
		t.Errorf("store holds %d debts after replay, want 4", len(store.debts))
	}
}

// Two commits racing on the same key: the other writer inserts first,
// ours fails on the unique idempotency_key constraint, and the winner's
// batch must be replayed instead of surfacing an error.
func TestCommitIdempotencyInsertConflict(t *testing.T) {
	key := "key-456"
	winner := &Batch{
		ID:             uuid.New(),
		TotalAmount:    dec("9000"),
		CostPerMember:  dec("204.55"),
		DebtsCreated:   4,
		IdempotencyKey: &key,
	}

	roster := &fakeRoster{entries: fourChapterRoster()}
	store := &fakeStore{
		createErr: errors.New(`duplicate key value violates unique constraint "distribution_batches_idempotency_key_key"`),
		raced:     winner,
	}
	service := NewService(roster, store)

	batch, replayed, err := service.Commit(context.Background(), 7, key, validCommitRequest())
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if !replayed {
		t.Error("conflicting commit not reported as replayed")
	}
	if batch.ID != winner.ID {
		t.Errorf("Commit() returned batch %s, want the winner %s", batch.ID, winner.ID)
	}
}
