package repository

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List retrieves articles with their comment counts, filtered and ordered
func (r *articleRepo) List(ctx context.Context, filter query.ArticleFilter) ([]models.Article, error) {
	stmt, err := query.ListArticles(filter)
	if err != nil {
		return nil, err
	}

	var articles []models.Article
	if err := r.db.SelectContext(ctx, &articles, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return listing(articles), nil
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	stmt := query.GetArticle(id)

	var rows []models.Article
	if err := r.db.SelectContext(ctx, &rows, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return exactlyOne(rows, MsgArticleNotFound)
}

// IncrementVotes applies a signed vote delta and returns the updated row
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, update models.VoteUpdate) (*models.Article, error) {
	stmt := query.IncrementArticleVotes(id, update)

	var rows []models.Article
	if err := r.db.SelectContext(ctx, &rows, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("increment votes on article %d: %w", id, err)
	}
	return exactlyOne(rows, MsgArticleNotFound)
}
