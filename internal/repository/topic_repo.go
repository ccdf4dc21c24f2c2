package repository

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List retrieves every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	stmt := query.ListTopics()

	var topics []models.Topic
	if err := r.db.SelectContext(ctx, &topics, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return listing(topics), nil
}

// ListSlugs retrieves all topic slugs (for the topic filter whitelist)
func (r *topicRepo) ListSlugs(ctx context.Context) ([]string, error) {
	stmt := query.ListTopicSlugs()

	var slugs []string
	if err := r.db.SelectContext(ctx, &slugs, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list topic slugs: %w", err)
	}
	return listing(slugs), nil
}
