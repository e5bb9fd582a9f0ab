package chapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elarca/treasury/internal/distribution"
)

// Repository handles chapter data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new chapter repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new chapter into the database
func (r *Repository) Create(ctx context.Context, req *CreateChapterRequest) (*Chapter, error) {
	query := `
		INSERT INTO chapters (name, city, member_count, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, name, city, member_count, is_active, created_at, updated_at
	`

	chapter := &Chapter{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.City, req.MemberCount).Scan(
		&chapter.ID,
		&chapter.Name,
		&chapter.City,
		&chapter.MemberCount,
		&chapter.IsActive,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}

	return chapter, nil
}

// GetByID retrieves a chapter by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Chapter, error) {
	query := `
		SELECT id, name, city, member_count, is_active, created_at, updated_at
		FROM chapters
		WHERE id = $1
	`

	chapter := &Chapter{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&chapter.ID,
		&chapter.Name,
		&chapter.City,
		&chapter.MemberCount,
		&chapter.IsActive,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}

	return chapter, nil
}

// List retrieves chapters, optionally only active ones
func (r *Repository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Chapter, int, error) {
	countQuery := `SELECT COUNT(*) FROM chapters WHERE ($1 = FALSE OR is_active = TRUE)`

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, activeOnly).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count chapters: %w", err)
	}

	query := `
		SELECT id, name, city, member_count, is_active, created_at, updated_at
		FROM chapters
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chapters: %w", err)
	}
	defer rows.Close()

	var chapters []*Chapter
	for rows.Next() {
		chapter := &Chapter{}
		if err := rows.Scan(
			&chapter.ID,
			&chapter.Name,
			&chapter.City,
			&chapter.MemberCount,
			&chapter.IsActive,
			&chapter.CreatedAt,
			&chapter.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan chapter: %w", err)
		}
		chapters = append(chapters, chapter)
	}

	return chapters, total, nil
}

// Update modifies an existing chapter
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateChapterRequest) (*Chapter, error) {
	query := `
		UPDATE chapters
		SET name = COALESCE($2, name),
		    city = COALESCE($3, city),
		    member_count = COALESCE($4, member_count),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, city, member_count, is_active, created_at, updated_at
	`

	chapter := &Chapter{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.City, req.MemberCount).Scan(
		&chapter.ID,
		&chapter.Name,
		&chapter.City,
		&chapter.MemberCount,
		&chapter.IsActive,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update chapter: %w", err)
	}

	return chapter, nil
}

// SetActive flips the active flag on a chapter. Chapters are never
// deleted so historical debts keep a valid reference.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) (*Chapter, error) {
	query := `
		UPDATE chapters
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, city, member_count, is_active, created_at, updated_at
	`

	chapter := &Chapter{}
	err := r.db.QueryRowContext(ctx, query, id, active).Scan(
		&chapter.ID,
		&chapter.Name,
		&chapter.City,
		&chapter.MemberCount,
		&chapter.IsActive,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set chapter active flag: %w", err)
	}

	return chapter, nil
}

// ActiveRoster returns the distribution roster snapshot: every active
// chapter with its current member count, in stable name order.
// Implements distribution.ChapterRoster.
func (r *Repository) ActiveRoster(ctx context.Context) ([]distribution.RosterEntry, error) {
	query := `
		SELECT id, name, member_count
		FROM chapters
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load active roster: %w", err)
	}
	defer rows.Close()

	var roster []distribution.RosterEntry
	for rows.Next() {
		var entry distribution.RosterEntry
		if err := rows.Scan(&entry.ChapterID, &entry.ChapterName, &entry.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, entry)
	}

	return roster, nil
}

var _ distribution.ChapterRoster = (*Repository)(nil)
