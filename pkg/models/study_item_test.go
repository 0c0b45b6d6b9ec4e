package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validItem() StudyItem {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	return StudyItem{
		ItemID:       "w1",
		AddedAt:      now,
		NextReviewAt: now.Add(12 * time.Hour),
	}
}

func TestStudyItemValidate(t *testing.T) {
	item := validItem()
	assert.NoError(t, item.Validate())

	tests := []struct {
		name   string
		mutate func(*StudyItem)
	}{
		{"empty item id", func(s *StudyItem) { s.ItemID = "" }},
		{"zero added_at", func(s *StudyItem) { s.AddedAt = time.Time{} }},
		{"zero next_review_at", func(s *StudyItem) { s.NextReviewAt = time.Time{} }},
		{"negative interval", func(s *StudyItem) { s.IntervalDays = -1 }},
		{"negative repetitions", func(s *StudyItem) { s.Repetitions = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)
			assert.Error(t, item.Validate())
		})
	}
}
