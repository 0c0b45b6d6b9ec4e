package review

import (
	"context"
	"fmt"
	"time"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
)

// SuccessIntervals holds the spacing in days applied after the Nth
// consecutive successful review, indexed from 1:
// after the 1st success 1 day, after the 2nd 1 day, after the 3rd 3 days,
// then 7, 14, 30 and 90 days. Beyond the table MatureInterval applies.
var SuccessIntervals = []int{1, 1, 3, 7, 14, 30, 90}

// MatureInterval is the fixed spacing in days once the table is exhausted
const MatureInterval = 90

// Store is the persistence abstraction the scheduler reads from and
// writes to. Implementations keep one flat set of study items per user.
type Store interface {
	GetAll(ctx context.Context, userID string) ([]models.StudyItem, error)
	Put(ctx context.Context, userID string, item models.StudyItem) error
	Delete(ctx context.Context, userID, itemID string) error
}

// Lookup resolves item ids against the read-only vocabulary catalog.
// Resolve returns nil (and no error) for ids the catalog does not know.
type Lookup interface {
	Resolve(ctx context.Context, itemID string) (*models.VocabEntry, error)
}

// Scheduler owns the study-item lifecycle: enrollment, due-date
// computation, outcome recording and due-set queries. It keeps no state of
// its own; every operation reads from and writes through the store, so a
// failed write leaves nothing to roll back and the call is safe to retry.
type Scheduler struct {
	store  Store
	lookup Lookup
	now    func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the scheduler's time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New creates a scheduler over the given store and vocabulary lookup
func New(store Store, lookup Lookup, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:  store,
		lookup: lookup,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enroll adds a vocabulary entry to the user's study set. A new item
// becomes due once on the day it was added: its first review is scheduled
// for the end of the current calendar day, so it shows up in today's due
// set but is not re-presented instantly within the same session.
// Enrolling an already-enrolled item is idempotent and returns the
// existing item with its schedule untouched.
func (s *Scheduler) Enroll(ctx context.Context, userID, itemID string) (models.StudyItem, error) {
	if itemID == "" {
		return models.StudyItem{}, fmt.Errorf("%w: empty item id", ErrInvalidArgument)
	}

	existing, err := s.loadItems(ctx, userID)
	if err != nil {
		return models.StudyItem{}, err
	}
	if item, ok := findItem(existing, itemID); ok {
		return item, nil
	}

	now := s.now()
	item := models.StudyItem{
		ItemID:       itemID,
		AddedAt:      now,
		NextReviewAt: endOfDay(now),
		IntervalDays: 0,
		Repetitions:  0,
	}
	if err := s.store.Put(ctx, userID, item); err != nil {
		return models.StudyItem{}, err
	}
	return item, nil
}

// Remove drops an item from the user's study set. Removing an item that
// is not enrolled is a no-op, not an error.
func (s *Scheduler) Remove(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidArgument)
	}
	return s.store.Delete(ctx, userID, itemID)
}

// RecordOutcome applies a single binary review result to an enrolled item
// and persists the new schedule.
//
// A failure resets the repetition count and re-schedules the item for the
// end of the current calendar day, so a missed word stays correctable
// within the same study session. A success bumps the repetition count and
// pushes the next review forward by a whole-day interval from the table,
// so a known word is not shown again minutes later.
func (s *Scheduler) RecordOutcome(ctx context.Context, userID, itemID string, success bool) (models.StudyItem, error) {
	if itemID == "" {
		return models.StudyItem{}, fmt.Errorf("%w: empty item id", ErrInvalidArgument)
	}

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return models.StudyItem{}, err
	}
	item, ok := findItem(items, itemID)
	if !ok {
		return models.StudyItem{}, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}

	now := s.now()
	if success {
		item.Repetitions++
		item.IntervalDays = intervalFor(item.Repetitions)
		item.NextReviewAt = now.Add(time.Duration(item.IntervalDays) * 24 * time.Hour)
	} else {
		item.Repetitions = 0
		item.IntervalDays = 0
		item.NextReviewAt = endOfDay(now)
	}
	item.LastReviewAt = &now

	if err := s.store.Put(ctx, userID, item); err != nil {
		return models.StudyItem{}, err
	}
	return item, nil
}

// DueItems returns the items due on the calendar day containing now:
// those whose next review falls between the local start and end of that
// day, both bounds inclusive. Duplicate records for the same item id are
// collapsed to the most recently written one, and items whose id no
// longer resolves in the vocabulary catalog are filtered out of the
// result but stay in storage. Order follows the underlying store.
func (s *Scheduler) DueItems(ctx context.Context, userID string, now time.Time) ([]models.StudyItem, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(now)
	dayEnd := endOfDay(now)

	due := make([]models.StudyItem, 0, len(items))
	for _, item := range items {
		if item.NextReviewAt.Before(dayStart) || item.NextReviewAt.After(dayEnd) {
			continue
		}
		entry, err := s.lookup.Resolve(ctx, item.ItemID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			// Entry dropped from the catalog: hide it but keep the record.
			continue
		}
		due = append(due, item)
	}
	return due, nil
}

// DueCount reports how many items are due on the day containing now
func (s *Scheduler) DueCount(ctx context.Context, userID string, now time.Time) (int, error) {
	due, err := s.DueItems(ctx, userID, now)
	if err != nil {
		return 0, err
	}
	return len(due), nil
}

// loadItems reads the user's study set and collapses duplicate item ids,
// keeping the most recently written record. Duplicates can appear because
// two UI surfaces may write the same item without coordination.
func (s *Scheduler) loadItems(ctx context.Context, userID string) ([]models.StudyItem, error) {
	items, err := s.store.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(items))
	unique := make([]models.StudyItem, 0, len(items))
	for _, item := range items {
		if idx, ok := seen[item.ItemID]; ok {
			unique[idx] = item
			continue
		}
		seen[item.ItemID] = len(unique)
		unique = append(unique, item)
	}
	return unique, nil
}

// intervalFor returns the spacing in days after the given consecutive
// success count
func intervalFor(repetitions int) int {
	if repetitions <= 0 {
		return 0
	}
	if repetitions <= len(SuccessIntervals) {
		return SuccessIntervals[repetitions-1]
	}
	return MatureInterval
}

func findItem(items []models.StudyItem, itemID string) (models.StudyItem, bool) {
	for _, item := range items {
		if item.ItemID == itemID {
			return item, true
		}
	}
	return models.StudyItem{}, false
}

// startOfDay returns local midnight of the day containing t
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable millisecond of the day
// containing t (23:59:59.999 local time)
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
