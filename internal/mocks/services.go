package mocks

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Topic{}, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc   func(ctx context.Context, params models.ArticleListParams) ([]models.Article, error)
	GetFunc    func(ctx context.Context, rawID string) (*models.Article, error)
	VoteFunc   func(ctx context.Context, rawID string, body []byte) (*models.Article, error)
	ListParams []models.ArticleListParams
}

var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, error) {
	m.ListParams = append(m.ListParams, params)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return []models.Article{}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, rawID string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, rawID)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, rawID string, body []byte) (*models.Article, error) {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, rawID, body)
	}
	return &models.Article{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, rawArticleID string) ([]models.Comment, error)
	AddFunc    func(ctx context.Context, rawArticleID string, body []byte) (*models.Comment, error)
	DeleteFunc func(ctx context.Context, rawCommentID string) error
	Bodies     [][]byte
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListComments(ctx context.Context, rawArticleID string) ([]models.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, rawArticleID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentService) AddComment(ctx context.Context, rawArticleID string, body []byte) (*models.Comment, error) {
	m.Bodies = append(m.Bodies, body)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, rawArticleID, body)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, rawCommentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, rawCommentID)
	}
	return nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListFunc func(ctx context.Context) ([]models.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.User{}, nil
}

// NewServices bundles fresh service mocks.
func NewServices() (*service.Services, *MockTopicService, *MockArticleService, *MockCommentService, *MockUserService) {
	topics := &MockTopicService{}
	articles := &MockArticleService{}
	comments := &MockCommentService{}
	users := &MockUserService{}
	return &service.Services{
		Topic:   topics,
		Article: articles,
		Comment: comments,
		User:    users,
	}, topics, articles, comments, users
}
