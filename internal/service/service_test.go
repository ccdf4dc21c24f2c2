package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/news-forum-api/internal/apperror"
	"github.com/news-forum-api/internal/mocks"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/news-forum-api/internal/service"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *service.Services
	topics   *mocks.MockTopicRepository
	articles *mocks.MockArticleRepository
	comments *mocks.MockCommentRepository
	users    *mocks.MockUserRepository
}

func newFixture() *fixture {
	repos, topics, articles, comments, users := mocks.NewRepositories()
	topics.Topics = []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
	articles.Articles[1] = &models.Article{ArticleID: 1, Topic: "mitch", Author: "butter_bridge", Votes: 100}
	articles.Articles[2] = &models.Article{ArticleID: 2, Topic: "mitch", Author: "icellusedkars"}
	articles.Articles[5] = &models.Article{ArticleID: 5, Topic: "cats", Author: "rogersop"}
	users.Users = []models.User{{Username: "butter_bridge", Name: "jonny"}}
	return &fixture{
		svc:      service.NewServices(repos, zerolog.Nop()),
		topics:   topics,
		articles: articles,
		comments: comments,
		users:    users,
	}
}

func requireAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr), "expected *apperror.Error, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, msg, appErr.Msg)
}

func TestListTopicsAndUsers(t *testing.T) {
	f := newFixture()

	topics, err := f.svc.Topic.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Len(t, topics, 3)

	users, err := f.svc.User.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", users[0].Username)
}

func TestListArticles_Defaults(t *testing.T) {
	f := newFixture()

	got, err := f.svc.Article.ListArticles(context.Background(), models.ArticleListParams{})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	require.NotNil(t, f.articles.LastFilter)
	assert.Equal(t, validation.DefaultSortColumn, f.articles.LastFilter.SortBy)
	assert.Equal(t, validation.OrderDesc, f.articles.LastFilter.Order)
	assert.Equal(t, 0, f.articles.LastFilter.Limit)
	assert.Equal(t, 0, f.topics.ListSlugCalls, "no topic filter means no slug lookup")
}

func TestListArticles_PassesNormalisedFilter(t *testing.T) {
	f := newFixture()

	got, err := f.svc.Article.ListArticles(context.Background(), models.ArticleListParams{
		Topic:  "mitch",
		SortBy: "votes",
		Order:  "asc",
		Limit:  "1",
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assert.Equal(t, "mitch", f.articles.LastFilter.Topic)
	assert.Equal(t, validation.SortColumn("votes"), f.articles.LastFilter.SortBy)
	assert.Equal(t, validation.OrderAsc, f.articles.LastFilter.Order)
	assert.Equal(t, 1, f.articles.LastFilter.Limit)
}

func TestListArticles_KnownTopicWithoutArticles(t *testing.T) {
	f := newFixture()

	got, err := f.svc.Article.ListArticles(context.Background(), models.ArticleListParams{Topic: "paper"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListArticles_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		params models.ArticleListParams
		status int
		msg    string
	}{
		{"bad sort column", models.ArticleListParams{SortBy: "body"}, http.StatusBadRequest, validation.MsgInvalidSortColumn},
		{"injection in sort", models.ArticleListParams{SortBy: "votes; DROP TABLE users"}, http.StatusBadRequest, validation.MsgInvalidSortColumn},
		{"bad order", models.ArticleListParams{Order: "sideways"}, http.StatusBadRequest, validation.MsgInvalidOrder},
		{"bad limit", models.ArticleListParams{Limit: "ten"}, http.StatusBadRequest, validation.MsgInvalidLimit},
		{"unknown topic", models.ArticleListParams{Topic: "dogs"}, http.StatusNotFound, validation.MsgInvalidTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Article.ListArticles(context.Background(), tt.params)
			requireAppError(t, err, tt.status, tt.msg)
			assert.Equal(t, 0, f.articles.ListCalls, "no listing query should run")
		})
	}
}

func TestListArticles_SortCheckedBeforeTopic(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Article.ListArticles(context.Background(), models.ArticleListParams{
		Topic:  "dogs",
		SortBy: "nope",
	})
	requireAppError(t, err, http.StatusBadRequest, validation.MsgInvalidSortColumn)
	assert.Equal(t, 0, f.topics.ListSlugCalls)
}

func TestListArticles_TopicLookupFailure(t *testing.T) {
	f := newFixture()
	f.topics.ListError = errors.New("connection refused")

	_, err := f.svc.Article.ListArticles(context.Background(), models.ArticleListParams{Topic: "mitch"})
	assert.EqualError(t, err, "connection refused")
}

func TestGetArticle(t *testing.T) {
	f := newFixture()

	a, err := f.svc.Article.GetArticle(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ArticleID)

	_, err = f.svc.Article.GetArticle(context.Background(), "1000")
	requireAppError(t, err, http.StatusNotFound, repository.MsgArticleNotFound)

	_, err = f.svc.Article.GetArticle(context.Background(), "one")
	requireAppError(t, err, http.StatusBadRequest, validation.MsgArticleIDType)
}

func TestUpdateVotes(t *testing.T) {
	f := newFixture()

	a, err := f.svc.Article.UpdateVotes(context.Background(), "1", []byte(`{"inc_votes": -101}`))
	require.NoError(t, err)
	assert.Equal(t, -1, a.Votes)
	assert.Nil(t, a.CommentCount)
}

func TestUpdateVotes_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		status int
		msg    string
	}{
		{"bad id", "abc", `{"inc_votes": 1}`, http.StatusBadRequest, validation.MsgArticleIDType},
		{"id checked before body", "abc", `{}`, http.StatusBadRequest, validation.MsgArticleIDType},
		{"empty body", "1", `{}`, http.StatusBadRequest, validation.MsgVotesFormat},
		{"string votes", "1", `{"inc_votes": "one"}`, http.StatusBadRequest, validation.MsgVotesFormat},
		{"extra key", "1", `{"inc_votes": 1, "name": "x"}`, http.StatusBadRequest, validation.MsgVotesFormat},
		{"missing article", "999", `{"inc_votes": 1}`, http.StatusNotFound, repository.MsgArticleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Article.UpdateVotes(context.Background(), tt.id, []byte(tt.body))
			requireAppError(t, err, tt.status, tt.msg)
		})
	}
}

func TestListComments(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.comments.Comments[1] = &models.Comment{CommentID: 1, ArticleID: 1, CreatedAt: now.Add(-time.Hour)}
	f.comments.Comments[2] = &models.Comment{CommentID: 2, ArticleID: 1, CreatedAt: now}
	f.comments.Comments[3] = &models.Comment{CommentID: 3, ArticleID: 5, CreatedAt: now}

	got, err := f.svc.Comment.ListComments(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].CommentID)

	_, err = f.svc.Comment.ListComments(context.Background(), "2")
	requireAppError(t, err, http.StatusNotFound, repository.MsgCommentsNotFound)

	_, err = f.svc.Comment.ListComments(context.Background(), "2x")
	requireAppError(t, err, http.StatusBadRequest, validation.MsgURLIDType)
}

func TestAddComment(t *testing.T) {
	f := newFixture()

	c, err := f.svc.Comment.AddComment(context.Background(), "2",
		[]byte(`{"username": "butter_bridge", "body": "first"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ArticleID)
	assert.Equal(t, "butter_bridge", c.Author)
	assert.Equal(t, "first", c.Body)
	assert.Len(t, f.comments.Comments, 1)
}

func TestAddComment_Rejections(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
		msg  string
	}{
		{"bad id", "two", `{"username": "a", "body": "b"}`, validation.MsgURLIDType},
		{"missing body key", "2", `{"username": "a"}`, validation.MsgInvalidColumnNames},
		{"unexpected key", "2", `{"username": "a", "body": "b", "votes": 3}`, validation.MsgInvalidColumnNames},
		{"not json", "2", `username=a`, validation.MsgInvalidColumnNames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Comment.AddComment(context.Background(), tt.id, []byte(tt.body))
			requireAppError(t, err, http.StatusBadRequest, tt.msg)
			assert.Empty(t, f.comments.Comments)
		})
	}
}

func TestAddComment_ForeignKeyViolationPassesThrough(t *testing.T) {
	f := newFixture()
	fk := &pq.Error{Code: "23503"}
	f.comments.CreateError = fk

	_, err := f.svc.Comment.AddComment(context.Background(), "999",
		[]byte(`{"username": "butter_bridge", "body": "hi"}`))
	require.Error(t, err)

	status, msg, known := apperror.Classify(err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperror.MsgIDDoesNotExist, msg)
	assert.True(t, known)
}

func TestDeleteComment(t *testing.T) {
	f := newFixture()
	f.comments.Comments[7] = &models.Comment{CommentID: 7, ArticleID: 1}

	require.NoError(t, f.svc.Comment.DeleteComment(context.Background(), "7"))
	assert.Equal(t, []int64{7}, f.comments.Deleted)

	err := f.svc.Comment.DeleteComment(context.Background(), "7")
	requireAppError(t, err, http.StatusNotFound, repository.MsgCommentNotFound)

	err = f.svc.Comment.DeleteComment(context.Background(), "seven")
	requireAppError(t, err, http.StatusBadRequest, validation.MsgCommentIDType)
}
