package repository

import (
	"context"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	ListSlugs(ctx context.Context) ([]string, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, filter query.ArticleFilter) ([]models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	IncrementVotes(ctx context.Context, id int64, update models.VoteUpdate) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, comment models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}
