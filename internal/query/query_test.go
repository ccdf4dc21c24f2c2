package query

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/news-forum-api/internal/apperror"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticles_Defaults(t *testing.T) {
	stmt, err := ListArticles(ArticleFilter{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT articles.author, articles.title, articles.article_id, articles.topic, "+
			"articles.created_at, articles.votes, articles.article_img_url, "+
			"CAST(COUNT(comments.comment_id) AS INT) AS comment_count "+
			"FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id "+
			"GROUP BY articles.article_id ORDER BY articles.created_at DESC, articles.article_id DESC",
		stmt.SQL)
	assert.Empty(t, stmt.Args)
}

func TestListArticles_TopicIsBound(t *testing.T) {
	stmt, err := ListArticles(ArticleFilter{Topic: "cats'; DROP TABLE articles; --"})
	require.NoError(t, err)

	assert.Contains(t, stmt.SQL, "WHERE articles.topic = $1 GROUP BY")
	assert.NotContains(t, stmt.SQL, "DROP")
	assert.Equal(t, []interface{}{"cats'; DROP TABLE articles; --"}, stmt.Args)
}

func TestListArticles_SortAndLimit(t *testing.T) {
	stmt, err := ListArticles(ArticleFilter{
		Topic:  "mitch",
		SortBy: "votes",
		Order:  validation.OrderAsc,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY articles.votes ASC, articles.article_id ASC LIMIT $2"), stmt.SQL)
	assert.Equal(t, []interface{}{"mitch", 10}, stmt.Args)
}

func TestListArticles_LimitWithoutTopic(t *testing.T) {
	stmt, err := ListArticles(ArticleFilter{Limit: 3})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stmt.SQL, "LIMIT $1"), stmt.SQL)
	assert.Equal(t, []interface{}{3}, stmt.Args)
}

func TestListArticles_CommentCountOrderingIsUnqualified(t *testing.T) {
	stmt, err := ListArticles(ArticleFilter{SortBy: "comment_count"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY comment_count DESC, articles.article_id DESC"), stmt.SQL)
}

func TestListArticles_EveryWhitelistedColumn(t *testing.T) {
	for col := range validation.SortableColumns {
		stmt, err := ListArticles(ArticleFilter{SortBy: validation.SortColumn(col)})
		require.NoError(t, err, col)
		assert.Contains(t, stmt.SQL, col+" DESC")
	}
}

func TestListArticles_TiesBrokenByArticleID(t *testing.T) {
	for _, col := range []validation.SortColumn{"votes", "topic", "comment_count", "author"} {
		stmt, err := ListArticles(ArticleFilter{SortBy: col, Order: validation.OrderAsc})
		require.NoError(t, err, col)
		assert.True(t, strings.HasSuffix(stmt.SQL, ", articles.article_id ASC"), stmt.SQL)
	}

	stmt, err := ListArticles(ArticleFilter{SortBy: "article_id"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY articles.article_id DESC"), stmt.SQL)
	assert.Equal(t, 1, strings.Count(stmt.SQL, "ORDER BY articles.article_id"))
}

func TestListArticles_RejectsUnvalidatedIdentifiers(t *testing.T) {
	_, err := ListArticles(ArticleFilter{SortBy: "votes; DELETE FROM comments"})
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, validation.MsgInvalidSortColumn, appErr.Msg)

	_, err = ListArticles(ArticleFilter{Order: "DESC NULLS FIRST"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, validation.MsgInvalidOrder, appErr.Msg)

	_, err = ListArticles(ArticleFilter{Limit: -1})
	assert.Error(t, err)
}

func TestGetArticle(t *testing.T) {
	stmt := GetArticle(3)
	assert.Contains(t, stmt.SQL, "LEFT JOIN comments ON articles.article_id = comments.article_id")
	assert.Contains(t, stmt.SQL, "articles.body")
	assert.True(t, strings.HasSuffix(stmt.SQL, "WHERE articles.article_id = $1 GROUP BY articles.article_id"))
	assert.Equal(t, []interface{}{int64(3)}, stmt.Args)
}

func TestIncrementArticleVotes(t *testing.T) {
	stmt := IncrementArticleVotes(2, models.VoteUpdate{IncVotes: -5})
	assert.Equal(t, "UPDATE articles SET votes = votes + $1 WHERE article_id = $2 RETURNING *", stmt.SQL)
	assert.Equal(t, []interface{}{-5, int64(2)}, stmt.Args)
}

func TestCommentStatements(t *testing.T) {
	list := ListCommentsByArticle(1)
	assert.True(t, strings.HasSuffix(list.SQL, "WHERE article_id = $1 ORDER BY created_at DESC"))
	assert.Equal(t, []interface{}{int64(1)}, list.Args)

	insert := InsertComment(1, models.NewComment{Username: "lurker", Body: "#metoo"})
	assert.Contains(t, insert.SQL, "VALUES ($1, $2, $3, 0, NOW()) RETURNING *")
	assert.Equal(t, []interface{}{"#metoo", int64(1), "lurker"}, insert.Args)

	find := FindComment(2)
	assert.Equal(t, "SELECT comment_id FROM comments WHERE comment_id = $1", find.SQL)

	del := DeleteComment(2)
	assert.Equal(t, "DELETE FROM comments WHERE comment_id = $1", del.SQL)
	assert.Equal(t, []interface{}{int64(2)}, del.Args)
}

func TestListingStatementsHaveNoArgs(t *testing.T) {
	for _, stmt := range []Statement{ListTopics(), ListTopicSlugs(), ListUsers()} {
		assert.Nil(t, stmt.Args, stmt.SQL)
		assert.True(t, strings.HasPrefix(stmt.SQL, "SELECT "))
	}
}
