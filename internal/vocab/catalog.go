package vocab

import (
	"context"
	"strings"

	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/pkg/models"
)

// Catalog is the read-only vocabulary lookup backed by the words table
type Catalog struct {
	words *database.WordRepository
}

// NewCatalog creates a catalog over the given word repository
func NewCatalog(words *database.WordRepository) *Catalog {
	return &Catalog{words: words}
}

// Resolve returns the catalog entry for an item id, or nil when the id is
// unknown. Synthesized ids never resolve.
func (c *Catalog) Resolve(ctx context.Context, itemID string) (*models.VocabEntry, error) {
	if IsSynthesizedID(itemID) {
		return nil, nil
	}
	return c.words.GetByID(ctx, itemID)
}

// FindID maps free word text to an item id. It tries an exact match on
// the normalized word, then a containment match for compound words, and
// finally synthesizes a stable id so any word can be enrolled even when
// it is missing from the catalog.
func (c *Catalog) FindID(ctx context.Context, word string) (string, error) {
	normalized := NormalizeWord(word)
	if normalized == "" {
		return "", nil
	}

	entries, err := c.words.GetAll(ctx)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if NormalizeWord(entry.Word) == normalized {
			return entry.ID, nil
		}
	}

	// Containment match for compound words, but only when both sides are
	// long enough to make the overlap meaningful.
	if len(normalized) >= 3 {
		for _, entry := range entries {
			base := NormalizeWord(entry.Word)
			if len(base) < 3 {
				continue
			}
			if strings.Contains(base, normalized) || strings.Contains(normalized, base) {
				return entry.ID, nil
			}
		}
	}

	return SynthesizeID(word), nil
}
