package debt

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrDebtNotFound        = errors.New("debt not found")
	ErrInvalidStatusChange = errors.New("invalid status change")
	ErrNoProofAttached     = errors.New("debt has no payment proof attached")
)

// Service handles debt review business logic. Debts are created in
// bulk by the distribution commit; this service owns everything that
// happens to them afterwards.
type Service struct {
	repo *Repository
}

// NewService creates a new debt service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a debt by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Debt, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}
	return debt, nil
}

// List retrieves debts with optional chapter/status/batch filters
func (s *Service) List(ctx context.Context, chapterID *int64, status *Status, batchID *uuid.UUID, page, perPage int) ([]*Debt, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	filter := ListFilter{ChapterID: chapterID, Status: status, BatchID: batchID}
	return s.repo.List(ctx, filter, perPage, offset)
}

// UploadProof attaches a payment proof and moves the debt into review.
// Allowed from PENDING and OVERDUE (late proofs are still reviewed).
func (s *Service) UploadProof(ctx context.Context, id int64, proofURL string) (*Debt, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}

	if !debt.Status.CanTransitionTo(StatusInReview) {
		return nil, ErrInvalidStatusChange
	}

	return s.repo.AttachProof(ctx, id, proofURL)
}

// Approve marks a reviewed debt as approved (terminal)
func (s *Service) Approve(ctx context.Context, id int64) (*Debt, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}

	if !debt.Status.CanTransitionTo(StatusApproved) {
		return nil, ErrInvalidStatusChange
	}
	if debt.ProofFileURL == nil {
		return nil, ErrNoProofAttached
	}

	return s.repo.UpdateStatus(ctx, id, StatusApproved, nil)
}

// Reject sends a reviewed debt back to pending with the reviewer's
// reason so the chapter can submit a corrected proof
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*Debt, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}

	if !debt.Status.CanTransitionTo(StatusPending) {
		return nil, ErrInvalidStatusChange
	}

	return s.repo.UpdateStatus(ctx, id, StatusPending, &reason)
}

// MarkOverdue flips past-due pending debts to OVERDUE. Intended to be
// called periodically by the scheduler that wraps this service.
func (s *Service) MarkOverdue(ctx context.Context) (int64, error) {
	return s.repo.MarkOverdue(ctx, time.Now())
}
