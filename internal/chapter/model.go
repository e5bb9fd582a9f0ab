package chapter

import "time"

// Chapter represents a regional chapter of the federation.
// Member count drives how federation-wide obligations are distributed;
// only active chapters participate in a distribution.
type Chapter struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	City        *string   `json:"city,omitempty"`
	MemberCount int       `json:"member_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
