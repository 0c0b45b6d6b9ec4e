package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/pkg/models"
)

// seedEntry is the JSON shape of one catalog record in a seed file
type seedEntry struct {
	ID            string   `json:"id"`
	Word          string   `json:"word"`
	Translation   string   `json:"translation"`
	Transcription string   `json:"transcription"`
	PartOfSpeech  string   `json:"part_of_speech"`
	Topics        []string `json:"topics"`
	Mnemonic      string   `json:"mnemonic"`
	Examples      string   `json:"examples"`
	Image         string   `json:"image"`
}

// SeedFromJSON loads catalog entries from a JSON array file into the
// words table. Entries without an id get one derived from the word text.
// Returns the number of entries loaded.
func SeedFromJSON(ctx context.Context, path string, words *database.WordRepository, topics *database.TopicRepository) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog file: %v", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse catalog file: %v", err)
	}

	loaded := 0
	for _, se := range entries {
		if se.Word == "" {
			continue
		}
		id := se.ID
		if id == "" {
			id = SynthesizeID(se.Word)
		}

		entry := models.VocabEntry{
			ID:            id,
			Word:          se.Word,
			Translation:   se.Translation,
			Transcription: se.Transcription,
			PartOfSpeech:  se.PartOfSpeech,
			Topics:        se.Topics,
			Mnemonic:      se.Mnemonic,
			Examples:      se.Examples,
			Image:         se.Image,
		}
		if err := words.Upsert(ctx, &entry); err != nil {
			return loaded, err
		}
		for _, name := range se.Topics {
			if _, err := topics.GetOrCreate(ctx, name); err != nil {
				return loaded, err
			}
		}
		loaded++
	}
	return loaded, nil
}
