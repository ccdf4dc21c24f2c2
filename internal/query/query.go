// Package query assembles the parameterized SQL statements issued by the
// repositories. Every function is pure: it returns the statement text and the
// arguments to bind, in placeholder order.
//
// User input only ever reaches a statement as a bound argument, with one
// exception: ORDER BY needs an identifier and a keyword, which postgres
// cannot bind. Those are re-checked against the whitelist immediately before
// being written into the statement.
package query

import (
	"fmt"
	"strings"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/validation"
)

// Statement is SQL text plus its ordered bind arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

// ArticleFilter selects and orders the article listing.
type ArticleFilter struct {
	Topic  string // empty for all topics
	SortBy validation.SortColumn
	Order  validation.SortOrder
	Limit  int // 0 for no limit
}

const articleColumns = `articles.author, articles.title, articles.article_id, articles.topic, ` +
	`articles.created_at, articles.votes, articles.article_img_url`

// commentCount counts joined comments; COUNT over an outer join yields 0 for
// articles without any.
const commentCount = `CAST(COUNT(comments.comment_id) AS INT) AS comment_count`

const articlesJoinComments = `FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id`

// ListArticles builds the article listing with comment counts.
func ListArticles(f ArticleFilter) (Statement, error) {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = validation.DefaultSortColumn
	}
	col, err := validation.CheckSortColumn(string(sortBy))
	if err != nil {
		return Statement{}, err
	}
	order := f.Order
	if order == "" {
		order = validation.DefaultSortOrder
	}
	dir, err := validation.CheckSortOrder(string(order))
	if err != nil {
		return Statement{}, err
	}
	if f.Limit < 0 {
		return Statement{}, fmt.Errorf("negative limit %d", f.Limit)
	}

	var b strings.Builder
	var args []interface{}

	b.WriteString("SELECT " + articleColumns + ", " + commentCount + " ")
	b.WriteString(articlesJoinComments)

	if f.Topic != "" {
		args = append(args, f.Topic)
		fmt.Fprintf(&b, " WHERE articles.topic = $%d", len(args))
	}

	b.WriteString(" GROUP BY articles.article_id")
	fmt.Fprintf(&b, " ORDER BY %s %s", orderExpr(col), dir)
	if col != "article_id" {
		// ties fall back to the primary key so repeated listings agree
		fmt.Fprintf(&b, ", articles.article_id %s", dir)
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	return Statement{SQL: b.String(), Args: args}, nil
}

// orderExpr qualifies a whitelisted column. comment_count is the aggregate's
// output name and stays bare.
func orderExpr(col validation.SortColumn) string {
	if col == "comment_count" {
		return string(col)
	}
	return "articles." + string(col)
}

// GetArticle builds the single-article lookup, body included.
func GetArticle(articleID int64) Statement {
	return Statement{
		SQL: "SELECT " + articleColumns + ", articles.body, " + commentCount + " " +
			articlesJoinComments +
			" WHERE articles.article_id = $1 GROUP BY articles.article_id",
		Args: []interface{}{articleID},
	}
}

// IncrementArticleVotes adjusts votes by a signed delta in the store so that
// concurrent updates never lose increments.
func IncrementArticleVotes(articleID int64, u models.VoteUpdate) Statement {
	return Statement{
		SQL:  "UPDATE articles SET votes = votes + $1 WHERE article_id = $2 RETURNING *",
		Args: []interface{}{u.IncVotes, articleID},
	}
}

// ListCommentsByArticle returns an article's comments, newest first.
func ListCommentsByArticle(articleID int64) Statement {
	return Statement{
		SQL: "SELECT comment_id, votes, created_at, author, body, article_id FROM comments" +
			" WHERE article_id = $1 ORDER BY created_at DESC",
		Args: []interface{}{articleID},
	}
}

// InsertComment adds a comment with zero votes stamped now.
func InsertComment(articleID int64, c models.NewComment) Statement {
	return Statement{
		SQL: "INSERT INTO comments (body, article_id, author, votes, created_at)" +
			" VALUES ($1, $2, $3, 0, NOW()) RETURNING *",
		Args: []interface{}{c.Body, articleID, c.Username},
	}
}

// FindComment is the existence check run before a delete.
func FindComment(commentID int64) Statement {
	return Statement{
		SQL:  "SELECT comment_id FROM comments WHERE comment_id = $1",
		Args: []interface{}{commentID},
	}
}

// DeleteComment removes a comment by ID.
func DeleteComment(commentID int64) Statement {
	return Statement{
		SQL:  "DELETE FROM comments WHERE comment_id = $1",
		Args: []interface{}{commentID},
	}
}

// ListTopics returns every topic.
func ListTopics() Statement {
	return Statement{SQL: "SELECT slug, description FROM topics"}
}

// ListTopicSlugs feeds the topic whitelist.
func ListTopicSlugs() Statement {
	return Statement{SQL: "SELECT slug FROM topics"}
}

// ListUsers returns every user.
func ListUsers() Statement {
	return Statement{SQL: "SELECT username, name, avatar_url FROM users"}
}
