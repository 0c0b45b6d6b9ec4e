package models

// Topic represents a thematic group of vocabulary entries
type Topic struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
