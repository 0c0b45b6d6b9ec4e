package database

import (
	"context"
	"fmt"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/jmoiron/sqlx"
)

// StudyItemRepository handles database operations for per-user study
// items. One instance wraps one connection (local or remote).
type StudyItemRepository struct {
	db *sqlx.DB
}

// NewStudyItemRepository creates a repository over the given connection
func NewStudyItemRepository(db *sqlx.DB) *StudyItemRepository {
	return &StudyItemRepository{db: db}
}

// GetAll returns the user's study items in insertion order
func (r *StudyItemRepository) GetAll(ctx context.Context, userID string) ([]models.StudyItem, error) {
	var items []models.StudyItem
	err := r.db.SelectContext(ctx, &items, `
		SELECT item_id, added_at, next_review_at, interval_days, repetitions, last_review_at
		FROM study_items
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get study items: %v", ErrStoreUnavailable, err)
	}
	return items, nil
}

// Put upserts a study item by (user, item). Malformed items are rejected
// before touching the database.
func (r *StudyItemRepository) Put(ctx context.Context, userID string, item models.StudyItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("refusing to store invalid study item: %v", err)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO study_items (
			user_id, item_id, added_at, next_review_at, interval_days, repetitions, last_review_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, item_id) DO UPDATE SET
			added_at = EXCLUDED.added_at,
			next_review_at = EXCLUDED.next_review_at,
			interval_days = EXCLUDED.interval_days,
			repetitions = EXCLUDED.repetitions,
			last_review_at = EXCLUDED.last_review_at
	`,
		userID,
		item.ItemID,
		item.AddedAt,
		item.NextReviewAt,
		item.IntervalDays,
		item.Repetitions,
		item.LastReviewAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to store study item: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes a study item. Deleting an absent item is a no-op.
func (r *StudyItemRepository) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM study_items WHERE user_id = $1 AND item_id = $2", userID, itemID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete study item: %v", ErrStoreUnavailable, err)
	}
	return nil
}
