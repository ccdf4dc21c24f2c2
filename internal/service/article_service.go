package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
	"github.com/news-forum-api/internal/repository"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	topics   repository.TopicRepository
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, topics repository.TopicRepository, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		topics:   topics,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the listing parameters and runs the query.
// An unknown topic is a 404; a known topic with no articles is an empty list.
func (s *articleService) ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, error) {
	sortBy, err := validation.CheckSortColumn(params.SortBy)
	if err != nil {
		return nil, err
	}
	order, err := validation.CheckSortOrder(params.Order)
	if err != nil {
		return nil, err
	}
	limit, err := validation.ParseLimit(params.Limit)
	if err != nil {
		return nil, err
	}

	if params.Topic != "" {
		slugs, err := s.topics.ListSlugs(ctx)
		if err != nil {
			return nil, err
		}
		if err := validation.NewTopicSet(slugs).Check(params.Topic); err != nil {
			return nil, err
		}
	}

	s.log.Debug().
		Str("topic", params.Topic).
		Str("sort_by", string(sortBy)).
		Str("order", string(order)).
		Int("limit", limit).
		Msg("Listing articles")

	return s.articles.List(ctx, query.ArticleFilter{
		Topic:  params.Topic,
		SortBy: sortBy,
		Order:  order,
		Limit:  limit,
	})
}

// GetArticle fetches one article with its comment count
func (s *articleService) GetArticle(ctx context.Context, rawID string) (*models.Article, error) {
	id, err := validation.ParseArticleID(rawID)
	if err != nil {
		return nil, err
	}
	return s.articles.GetByID(ctx, id)
}

// UpdateVotes applies {"inc_votes": n} to an article
func (s *articleService) UpdateVotes(ctx context.Context, rawID string, body []byte) (*models.Article, error) {
	id, err := validation.ParseArticleID(rawID)
	if err != nil {
		return nil, err
	}
	update, err := validation.ParseVoteUpdate(body)
	if err != nil {
		return nil, err
	}
	return s.articles.IncrementVotes(ctx, id, *update)
}
