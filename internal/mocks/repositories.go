package mocks

import (
	"context"
	"sort"

	"github.com/news-forum-api/internal/apperror"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
	"github.com/news-forum-api/internal/repository"
)

var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics        []models.Topic
	ListError     error
	ListSlugCalls int
}

func NewMockTopicRepository(topics ...models.Topic) *MockTopicRepository {
	return &MockTopicRepository{Topics: topics}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]models.Topic, len(m.Topics))
	copy(out, m.Topics)
	return out, nil
}

func (m *MockTopicRepository) ListSlugs(ctx context.Context) ([]string, error) {
	m.ListSlugCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	slugs := make([]string, 0, len(m.Topics))
	for _, t := range m.Topics {
		slugs = append(slugs, t.Slug)
	}
	return slugs, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// It records the last filter it was asked to list with.
type MockArticleRepository struct {
	Articles    map[int64]*models.Article
	ListError   error
	UpdateError error
	LastFilter  *query.ArticleFilter
	ListCalls   int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]*models.Article),
	}
}

func (m *MockArticleRepository) List(ctx context.Context, f query.ArticleFilter) ([]models.Article, error) {
	m.ListCalls++
	m.LastFilter = &f
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if f.Topic != "" && a.Topic != f.Topic {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArticleID < out[j].ArticleID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperror.NotFound(repository.MsgArticleNotFound)
	}
	cp := *a
	return &cp, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, u models.VoteUpdate) (*models.Article, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperror.NotFound(repository.MsgArticleNotFound)
	}
	a.Votes += u.IncVotes
	cp := *a
	cp.CommentCount = nil
	return &cp, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[int64]*models.Comment
	NextID      int64
	CreateError error
	DeleteError error
	Deleted     []int64
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	if len(out) == 0 {
		return nil, apperror.NotFound(repository.MsgCommentsNotFound)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int64, c models.NewComment) (*models.Comment, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	comment := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    c.Username,
		Body:      c.Body,
	}
	m.Comments[comment.CommentID] = comment
	m.NextID++
	cp := *comment
	return &cp, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.Comments[id]; !ok {
		return apperror.NotFound(repository.MsgCommentNotFound)
	}
	delete(m.Comments, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users     []models.User
	ListError error
}

func NewMockUserRepository(users ...models.User) *MockUserRepository {
	return &MockUserRepository{Users: users}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]models.User, len(m.Users))
	copy(out, m.Users)
	return out, nil
}

// NewRepositories bundles fresh mocks into a Repositories value.
func NewRepositories() (*repository.Repositories, *MockTopicRepository, *MockArticleRepository, *MockCommentRepository, *MockUserRepository) {
	topics := NewMockTopicRepository()
	articles := NewMockArticleRepository()
	comments := NewMockCommentRepository()
	users := NewMockUserRepository()
	return &repository.Repositories{
		Topic:   topics,
		Article: articles,
		Comment: comments,
		User:    users,
	}, topics, articles, comments, users
}
