package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TopicRepository handles database operations for topics
type TopicRepository struct {
	db *sqlx.DB
}

// NewTopicRepository creates a new repository instance
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// GetAll returns all topics ordered by name
func (r *TopicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.SelectContext(ctx, &topics, "SELECT * FROM topics ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get topics: %v", ErrStoreUnavailable, err)
	}
	return topics, nil
}

// GetOrCreate returns the topic with the given name, creating it first
// when missing
func (r *TopicRepository) GetOrCreate(ctx context.Context, name string) (models.Topic, error) {
	var topic models.Topic
	err := r.db.GetContext(ctx, &topic, "SELECT * FROM topics WHERE name = $1", name)
	if err == nil {
		return topic, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Topic{}, fmt.Errorf("%w: failed to get topic: %v", ErrStoreUnavailable, err)
	}

	res, err := r.db.ExecContext(ctx, "INSERT INTO topics (name) VALUES ($1)", name)
	if err != nil {
		return models.Topic{}, fmt.Errorf("%w: failed to create topic: %v", ErrStoreUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Topic{}, fmt.Errorf("%w: failed to read topic id: %v", ErrStoreUnavailable, err)
	}
	return models.Topic{ID: id, Name: name}, nil
}
