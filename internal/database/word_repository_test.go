package database

import (
	"context"
	"testing"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordUpsertAndGetByID(t *testing.T) {
	repo := NewWordRepository(newTestDB(t))
	ctx := context.Background()

	entry := models.VocabEntry{
		ID:           "w_tisch",
		Word:         "der Tisch",
		Translation:  "table",
		PartOfSpeech: "noun",
		Topics:       []string{"Furniture", "Home"},
	}
	require.NoError(t, repo.Upsert(ctx, &entry))

	got, err := repo.GetByID(ctx, "w_tisch")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "der Tisch", got.Word)
	assert.Equal(t, []string{"Furniture", "Home"}, got.Topics)

	// Re-import overwrites instead of duplicating.
	entry.Translation = "table, desk"
	require.NoError(t, repo.Upsert(ctx, &entry))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err = repo.GetByID(ctx, "w_tisch")
	require.NoError(t, err)
	assert.Equal(t, "table, desk", got.Translation)
}

func TestWordGetByIDUnknown(t *testing.T) {
	repo := NewWordRepository(newTestDB(t))

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "an unknown id resolves to nil, not an error")
}

func TestWordUpsertRejectsEmpty(t *testing.T) {
	repo := NewWordRepository(newTestDB(t))

	err := repo.Upsert(context.Background(), &models.VocabEntry{ID: "x"})
	assert.Error(t, err)
}

func TestTopicGetOrCreate(t *testing.T) {
	repo := NewTopicRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "Verbs")
	require.NoError(t, err)
	again, err := repo.GetOrCreate(ctx, "Verbs")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	topics, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}
