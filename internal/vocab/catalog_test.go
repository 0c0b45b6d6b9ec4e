package vocab

import (
	"context"
	"testing"

	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*Catalog, *database.WordRepository, *database.TopicRepository) {
	t.Helper()
	db, err := database.ConnectLocal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	words := database.NewWordRepository(db)
	topics := database.NewTopicRepository(db)
	return NewCatalog(words), words, topics
}

func seedWord(t *testing.T, words *database.WordRepository, id, word string) {
	t.Helper()
	require.NoError(t, words.Upsert(context.Background(), &models.VocabEntry{
		ID:          id,
		Word:        word,
		Translation: "x",
	}))
}

func TestCatalogResolve(t *testing.T) {
	catalog, words, _ := newTestCatalog(t)
	ctx := context.Background()
	seedWord(t, words, "w_tisch", "der Tisch")

	entry, err := catalog.Resolve(ctx, "w_tisch")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "der Tisch", entry.Word)

	entry, err = catalog.Resolve(ctx, "w_missing")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCatalogResolveSynthesizedID(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	entry, err := catalog.Resolve(context.Background(), SynthesizeID("Erfundenes"))
	require.NoError(t, err)
	assert.Nil(t, entry, "synthesized ids never resolve against the catalog")
}

func TestCatalogFindIDExactMatch(t *testing.T) {
	catalog, words, _ := newTestCatalog(t)
	ctx := context.Background()
	seedWord(t, words, "w_tisch", "der Tisch")

	id, err := catalog.FindID(ctx, "TISCH")
	require.NoError(t, err)
	assert.Equal(t, "w_tisch", id, "article and case do not matter")
}

func TestCatalogFindIDContainmentMatch(t *testing.T) {
	catalog, words, _ := newTestCatalog(t)
	ctx := context.Background()
	seedWord(t, words, "w_schreibtisch", "der Schreibtisch")

	id, err := catalog.FindID(ctx, "Schreibtischlampe")
	require.NoError(t, err)
	assert.Equal(t, "w_schreibtisch", id, "compound words match by containment")
}

func TestCatalogFindIDSynthesizesFallback(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	id, err := catalog.FindID(context.Background(), "Wolkenkratzer")
	require.NoError(t, err)
	assert.Equal(t, "temp_wolkenkratzer", id, "unknown words get a stable synthesized id")

	again, err := catalog.FindID(context.Background(), "der Wolkenkratzer")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestCatalogFindIDEmptyWord(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	id, err := catalog.FindID(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, id)
}
