package chapter

import "time"

// CreateChapterRequest represents the request to register a new chapter
type CreateChapterRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	City        *string `json:"city,omitempty"`
	MemberCount int     `json:"member_count" validate:"required,gte=1"`
}

// UpdateChapterRequest represents the request to update a chapter
type UpdateChapterRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	City        *string `json:"city,omitempty"`
	MemberCount *int    `json:"member_count,omitempty" validate:"omitempty,gte=1"`
}

// ChapterResponse represents the response for a chapter
type ChapterResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        *string `json:"city,omitempty"`
	MemberCount int     `json:"member_count"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToResponse converts a Chapter model to a ChapterResponse DTO
func (c *Chapter) ToResponse() *ChapterResponse {
	return &ChapterResponse{
		ID:          c.ID,
		Name:        c.Name,
		City:        c.City,
		MemberCount: c.MemberCount,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
