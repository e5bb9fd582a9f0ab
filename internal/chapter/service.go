package chapter

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrChapterNotFound    = errors.New("chapter not found")
	ErrInvalidMemberCount = errors.New("member count must be at least 1")
)

// Service handles chapter business logic
type Service struct {
	repo *Repository
}

// NewService creates a new chapter service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new chapter, active by default
func (s *Service) Create(ctx context.Context, req *CreateChapterRequest) (*Chapter, error) {
	if req.MemberCount < 1 {
		return nil, ErrInvalidMemberCount
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a chapter by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Chapter, error) {
	chapter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

// List retrieves chapters with pagination
func (s *Service) List(ctx context.Context, activeOnly bool, page, perPage int) ([]*Chapter, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, activeOnly, perPage, offset)
}

// Update modifies a chapter's name, city or member count
func (s *Service) Update(ctx context.Context, id int64, req *UpdateChapterRequest) (*Chapter, error) {
	if req.MemberCount != nil && *req.MemberCount < 1 {
		return nil, ErrInvalidMemberCount
	}

	chapter, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

// Deactivate removes a chapter from future distributions without
// touching its existing debts
func (s *Service) Deactivate(ctx context.Context, id int64) (*Chapter, error) {
	chapter, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

// Reactivate puts a chapter back into future distributions
func (s *Service) Reactivate(ctx context.Context, id int64) (*Chapter, error) {
	chapter, err := s.repo.SetActive(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}
