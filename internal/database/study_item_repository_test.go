package database

import (
	"context"
	"testing"
	"time"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, initializeSchema(db))
	return db
}

func testItem(itemID string, due time.Time) models.StudyItem {
	return models.StudyItem{
		ItemID:       itemID,
		AddedAt:      due.Add(-time.Hour),
		NextReviewAt: due,
		IntervalDays: 0,
		Repetitions:  0,
	}
}

func TestStudyItemPutGetRoundTrip(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))
	ctx := context.Background()

	due := time.Date(2024, 3, 4, 23, 59, 59, int(999*time.Millisecond), time.Local)
	item := testItem("w1", due)
	require.NoError(t, repo.Put(ctx, "u1", item))

	items, err := repo.GetAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "w1", got.ItemID)
	assert.True(t, due.Equal(got.NextReviewAt), "want %v, got %v", due, got.NextReviewAt)
	assert.Nil(t, got.LastReviewAt)
}

func TestStudyItemPutUpserts(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))
	ctx := context.Background()

	due := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	item := testItem("w1", due)
	require.NoError(t, repo.Put(ctx, "u1", item))

	reviewed := due.Add(time.Hour)
	item.Repetitions = 1
	item.IntervalDays = 1
	item.NextReviewAt = reviewed.Add(24 * time.Hour)
	item.LastReviewAt = &reviewed
	require.NoError(t, repo.Put(ctx, "u1", item))

	items, err := repo.GetAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "put is an upsert by (user, item)")
	assert.Equal(t, 1, items[0].Repetitions)
	require.NotNil(t, items[0].LastReviewAt)
	assert.True(t, reviewed.Equal(*items[0].LastReviewAt))
}

func TestStudyItemPutRejectsInvalid(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))

	err := repo.Put(context.Background(), "u1", models.StudyItem{ItemID: ""})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStoreUnavailable, "validation failures are not store failures")
}

func TestStudyItemGetAllKeepsInsertionOrder(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))
	ctx := context.Background()

	due := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Put(ctx, "u1", testItem(id, due)))
	}

	items, err := repo.GetAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ItemID)
	assert.Equal(t, "a", items[1].ItemID)
	assert.Equal(t, "b", items[2].ItemID)
}

func TestStudyItemsAreScopedPerUser(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))
	ctx := context.Background()

	due := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	require.NoError(t, repo.Put(ctx, "u1", testItem("w1", due)))
	require.NoError(t, repo.Put(ctx, "u2", testItem("w1", due)))

	items, err := repo.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.Delete(ctx, "u1", "w1"))

	items, err = repo.GetAll(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, items, 1, "deleting for one user leaves the other untouched")
}

func TestStudyItemDeleteMissingIsNoop(t *testing.T) {
	repo := NewStudyItemRepository(newTestDB(t))
	assert.NoError(t, repo.Delete(context.Background(), "u1", "nope"))
}
