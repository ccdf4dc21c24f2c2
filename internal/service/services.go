package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// ArticleService defines the interface for article operations.
// Raw path and query values are passed through untouched; validation
// happens here, before any statement is built.
type ArticleService interface {
	ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, error)
	GetArticle(ctx context.Context, rawID string) (*models.Article, error)
	UpdateVotes(ctx context.Context, rawID string, body []byte) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, rawArticleID string) ([]models.Comment, error)
	AddComment(ctx context.Context, rawArticleID string, body []byte) (*models.Comment, error)
	DeleteComment(ctx context.Context, rawCommentID string) error
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic),
		Article: newArticleService(repos.Article, repos.Topic, log),
		Comment: newCommentService(repos.Comment, log),
		User:    newUserService(repos.User),
	}
}
