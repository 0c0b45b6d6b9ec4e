package models

import "time"

// User represents an application user identified through Telegram.
// Guests get a synthesized stable identifier instead of a Telegram ID.
type User struct {
	ID                  string    `json:"id" db:"id"` // Telegram user ID, or a guest id for anonymous users
	Name                string    `json:"name" db:"name"`
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
