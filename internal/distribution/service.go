package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elarca/treasury/internal/debt"
	"github.com/elarca/treasury/internal/distribution/allocate"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid distribution input")
	ErrNoActiveChapters   = errors.New("no active chapters to distribute across")
	ErrNoMembers          = errors.New("active chapters have no members")
	ErrPersistenceFailure = errors.New("failed to persist distribution batch")
)

// maxTotalAmount bounds a single distribution
var maxTotalAmount = decimal.NewFromInt(10_000_000)

// Service orchestrates distribution previews and commits. A commit
// always recomputes the plan from a fresh roster snapshot; a plan a
// client previewed earlier is never trusted or persisted directly.
type Service struct {
	roster ChapterRoster
	store  BatchStore
}

// NewService creates a new distribution service with dependencies injected
func NewService(roster ChapterRoster, store BatchStore) *Service {
	return &Service{
		roster: roster,
		store:  store,
	}
}

// Preview computes the distribution plan for totalAmount against the
// current active roster. Read-only; safe to call repeatedly.
func (s *Service) Preview(ctx context.Context, totalAmount decimal.Decimal) (*Plan, error) {
	if err := validateAmount(totalAmount); err != nil {
		return nil, err
	}

	roster, err := s.roster.ActiveRoster(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildPlan(totalAmount, roster)
}

// Commit recomputes the plan server-side and persists one pending debt
// per chapter as a single atomic batch. When idempotencyKey matches a
// previous commit, that batch is returned and replayed is true; no new
// debts are created.
func (s *Service) Commit(ctx context.Context, actorID int64, idempotencyKey string, req *CommitRequest) (*Batch, bool, error) {
	dueDate, err := validateCommit(req)
	if err != nil {
		return nil, false, err
	}

	if idempotencyKey != "" {
		existing, err := s.store.FindByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	roster, err := s.roster.ActiveRoster(ctx)
	if err != nil {
		return nil, false, err
	}

	plan, err := s.buildPlan(req.TotalAmount, roster)
	if err != nil {
		return nil, false, err
	}

	records := make([]DebtRecord, len(plan.Items))
	for i, item := range plan.Items {
		records[i] = DebtRecord{
			ChapterID: item.ChapterID,
			Amount:    item.AssignedAmount,
		}
	}

	batch := &Batch{
		ID:            uuid.New(),
		TotalAmount:   req.TotalAmount,
		CostPerMember: plan.CostPerMember,
		DebtsCreated:  len(records),
		Description:   req.Description,
		DebtType:      req.DebtType,
		Category:      req.Category,
		DueDate:       dueDate,
		BankName:      req.BankName,
		BankClabe:     req.BankClabe,
		BankAccount:   req.BankAccount,
		BankHolder:    req.BankHolder,
		CreatedBy:     actorID,
	}
	if idempotencyKey != "" {
		batch.IdempotencyKey = &idempotencyKey
	}

	if err := s.store.CreateWithDebts(ctx, batch, records); err != nil {
		// A concurrent commit with the same key can slip in between the
		// lookup above and this insert; the unique index on
		// idempotency_key rejects the loser. Replay the winner's batch
		// instead of surfacing the conflict.
		if idempotencyKey != "" {
			existing, findErr := s.store.FindByIdempotencyKey(ctx, idempotencyKey)
			if findErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("%w: %s", ErrPersistenceFailure, err)
	}

	return batch, false, nil
}

// GetBatch retrieves a committed batch by its ID
func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (*Batch, error) {
	return s.store.GetByID(ctx, id)
}

// ListBatches retrieves committed batches, newest first
func (s *Service) ListBatches(ctx context.Context, page, perPage int) ([]*Batch, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.List(ctx, perPage, offset)
}

// buildPlan runs the allocator against a roster snapshot
func (s *Service) buildPlan(totalAmount decimal.Decimal, roster []RosterEntry) (*Plan, error) {
	if len(roster) == 0 {
		return nil, ErrNoActiveChapters
	}

	totalMembers := 0
	for _, entry := range roster {
		totalMembers += entry.MemberCount
	}
	if totalMembers == 0 {
		return nil, ErrNoMembers
	}

	entries := make([]allocate.Entry, len(roster))
	for i, chapter := range roster {
		entries[i] = allocate.Entry{
			ChapterID:   chapter.ChapterID,
			MemberCount: chapter.MemberCount,
		}
	}

	shares, err := allocate.Allocate(totalAmount, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	items := make([]PlanItem, len(roster))
	for i, chapter := range roster {
		items[i] = PlanItem{
			ChapterID:      chapter.ChapterID,
			ChapterName:    chapter.ChapterName,
			MemberCount:    chapter.MemberCount,
			AssignedAmount: shares[i].Amount,
		}
	}

	return &Plan{
		TotalAmount:   totalAmount,
		TotalChapters: len(roster),
		TotalMembers:  totalMembers,
		CostPerMember: allocate.CostPerMember(totalAmount, totalMembers),
		Items:         items,
	}, nil
}

// validateAmount enforces the allowed amount band
func validateAmount(totalAmount decimal.Decimal) error {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: total amount must be positive", ErrInvalidInput)
	}
	if totalAmount.GreaterThan(maxTotalAmount) {
		return fmt.Errorf("%w: total amount exceeds the %s limit", ErrInvalidInput, maxTotalAmount)
	}
	if !totalAmount.Equal(totalAmount.Round(2)) {
		return fmt.Errorf("%w: total amount must have at most two decimal places", ErrInvalidInput)
	}
	return nil
}

// validateCommit checks everything that must hold before any roster
// read or persistence attempt happens
func validateCommit(req *CommitRequest) (time.Time, error) {
	if err := validateAmount(req.TotalAmount); err != nil {
		return time.Time{}, err
	}
	if req.Description == "" {
		return time.Time{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if !debt.ValidType(req.DebtType) {
		return time.Time{}, fmt.Errorf("%w: unknown debt type %q", ErrInvalidInput, req.DebtType)
	}
	if req.BankName == "" {
		return time.Time{}, fmt.Errorf("%w: bank name is required", ErrInvalidInput)
	}
	if req.BankHolder == "" {
		return time.Time{}, fmt.Errorf("%w: bank holder is required", ErrInvalidInput)
	}
	if emptyStr(req.BankClabe) && emptyStr(req.BankAccount) {
		return time.Time{}, fmt.Errorf("%w: at least one of bank CLABE or bank account is required", ErrInvalidInput)
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return dueDate, nil
}

func emptyStr(s *string) bool {
	return s == nil || *s == ""
}
