package models

import "time"

// VocabEntry represents a German vocabulary entry from the read-only catalog
type VocabEntry struct {
	ID            string    `json:"id" db:"id"`
	Word          string    `json:"word" db:"word"`
	Translation   string    `json:"translation" db:"translation"`
	Transcription string    `json:"transcription" db:"transcription"`
	PartOfSpeech  string    `json:"part_of_speech" db:"part_of_speech"`
	Topics        []string  `json:"topics" db:"-"`
	TopicsRaw     string    `json:"-" db:"topics"` // Comma-separated storage form of Topics
	Mnemonic      string    `json:"mnemonic" db:"mnemonic"`
	Examples      string    `json:"examples" db:"examples"`
	Image         string    `json:"image" db:"image"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
