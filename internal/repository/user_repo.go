package repository

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// List retrieves every user
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	stmt := query.ListUsers()

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return listing(users), nil
}
