package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/jmoiron/sqlx"
)

// WordRepository handles database operations for the read-only vocabulary
// catalog
type WordRepository struct {
	db *sqlx.DB
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db}
}

// GetByID returns a catalog entry by id, or nil when the id is unknown
func (r *WordRepository) GetByID(ctx context.Context, id string) (*models.VocabEntry, error) {
	var entry models.VocabEntry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM words WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get word by id: %v", ErrStoreUnavailable, err)
	}
	entry.Topics = splitTopics(entry.TopicsRaw)
	return &entry, nil
}

// GetAll returns all catalog entries ordered by word
func (r *WordRepository) GetAll(ctx context.Context) ([]models.VocabEntry, error) {
	var entries []models.VocabEntry
	err := r.db.SelectContext(ctx, &entries, "SELECT * FROM words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get words: %v", ErrStoreUnavailable, err)
	}
	for i := range entries {
		entries[i].Topics = splitTopics(entries[i].TopicsRaw)
	}
	return entries, nil
}

// Count returns the number of catalog entries
func (r *WordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("%w: failed to count words: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

// Upsert inserts or replaces a catalog entry by id
func (r *WordRepository) Upsert(ctx context.Context, entry *models.VocabEntry) error {
	if entry.ID == "" || entry.Word == "" {
		return fmt.Errorf("catalog entry needs an id and a word")
	}
	entry.TopicsRaw = strings.Join(entry.Topics, ",")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO words (id, word, translation, transcription, part_of_speech, topics, mnemonic, examples, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			word = EXCLUDED.word,
			translation = EXCLUDED.translation,
			transcription = EXCLUDED.transcription,
			part_of_speech = EXCLUDED.part_of_speech,
			topics = EXCLUDED.topics,
			mnemonic = EXCLUDED.mnemonic,
			examples = EXCLUDED.examples,
			image = EXCLUDED.image
	`,
		entry.ID,
		entry.Word,
		entry.Translation,
		entry.Transcription,
		entry.PartOfSpeech,
		entry.TopicsRaw,
		entry.Mnemonic,
		entry.Examples,
		entry.Image,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert word: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func splitTopics(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	topics := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			topics = append(topics, p)
		}
	}
	return topics
}
