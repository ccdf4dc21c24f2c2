package repository

import (
	"github.com/news-forum-api/internal/apperror"
)

// Messages for lookups that matched nothing.
const (
	MsgArticleNotFound  = "no article with that ID exists"
	MsgCommentNotFound  = "no comment with that ID exists"
	MsgCommentsNotFound = "there are no comments for this article or no such article exists"
)

// exactlyOne unwraps a lookup-by-ID row set. An empty set is a 404 carrying
// msg. Lookups are by primary key, so more than one row cannot occur.
func exactlyOne[T any](rows []T, msg string) (*T, error) {
	if len(rows) == 0 {
		return nil, apperror.NotFound(msg)
	}
	return &rows[0], nil
}

// atLeastOne is for lookups where an empty set means the parent is missing.
func atLeastOne[T any](rows []T, msg string) ([]T, error) {
	if len(rows) == 0 {
		return nil, apperror.NotFound(msg)
	}
	return rows, nil
}

// listing never fails: an empty set is an empty, non-nil list.
func listing[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
