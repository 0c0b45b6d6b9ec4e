package models

import (
	"fmt"
	"time"
)

// StudyItem tracks the review schedule for one vocabulary entry a user
// has chosen to study
type StudyItem struct {
	ItemID       string     `json:"item_id" db:"item_id"`
	AddedAt      time.Time  `json:"added_at" db:"added_at"`
	NextReviewAt time.Time  `json:"next_review_at" db:"next_review_at"`
	IntervalDays int        `json:"interval_days" db:"interval_days"`   // Current interval in days, 0 until the first success
	Repetitions  int        `json:"repetitions" db:"repetitions"`       // Consecutive successful reviews since the last failure
	LastReviewAt *time.Time `json:"last_review_at" db:"last_review_at"` // Nil until the first recorded outcome
}

// Validate checks the invariants every stored study item must hold.
// Records that fail validation are rejected rather than silently coerced.
func (s *StudyItem) Validate() error {
	if s.ItemID == "" {
		return fmt.Errorf("study item has empty item_id")
	}
	if s.AddedAt.IsZero() {
		return fmt.Errorf("study item %s has no added_at", s.ItemID)
	}
	if s.NextReviewAt.IsZero() {
		return fmt.Errorf("study item %s has no next_review_at", s.ItemID)
	}
	if s.IntervalDays < 0 {
		return fmt.Errorf("study item %s has negative interval %d", s.ItemID, s.IntervalDays)
	}
	if s.Repetitions < 0 {
		return fmt.Errorf("study item %s has negative repetition count %d", s.ItemID, s.Repetitions)
	}
	return nil
}
