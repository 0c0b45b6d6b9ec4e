package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// NewGuestID synthesizes a stable identifier for a user without a
// Telegram account
func NewGuestID() string {
	return "guest_" + uuid.NewString()
}

// GetByID returns a user by id, or nil when unknown
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}

// Ensure creates the user when missing and refreshes the name otherwise.
// It returns the stored user either way.
func (r *UserRepository) Ensure(ctx context.Context, id, name string) (*models.User, error) {
	if id == "" {
		id = NewGuestID()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = CURRENT_TIMESTAMP
	`, id, name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upsert user: %v", ErrStoreUnavailable, err)
	}
	return r.GetByID(ctx, id)
}

// GetNotifiable returns users with reminders enabled
func (r *UserRepository) GetNotifiable(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, "SELECT * FROM users WHERE notification_enabled = true")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get notifiable users: %v", ErrStoreUnavailable, err)
	}
	return users, nil
}

// SetNotifications toggles reminder delivery for a user
func (r *UserRepository) SetNotifications(ctx context.Context, id string, enabled bool) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET notification_enabled = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		enabled, id)
	if err != nil {
		return fmt.Errorf("%w: failed to update notifications: %v", ErrStoreUnavailable, err)
	}
	return nil
}
