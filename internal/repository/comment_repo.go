package repository

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/query"
	"github.com/rs/zerolog"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db  *database.DB
	log zerolog.Logger
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{
		db:  db,
		log: db.Logger().With().Str("repository", "comment").Logger(),
	}
}

// ListByArticle retrieves an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	stmt := query.ListCommentsByArticle(articleID)

	var comments []models.Comment
	if err := r.db.SelectContext(ctx, &comments, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}
	return atLeastOne(comments, MsgCommentsNotFound)
}

// Create inserts a new comment and returns the stored row
func (r *commentRepo) Create(ctx context.Context, articleID int64, comment models.NewComment) (*models.Comment, error) {
	stmt := query.InsertComment(articleID, comment)

	var created models.Comment
	if err := r.db.GetContext(ctx, &created, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("insert comment on article %d: %w", articleID, err)
	}
	return &created, nil
}

// Delete removes a comment, reporting a 404 when it does not exist.
// The check and the delete are separate statements; a comment removed in
// between leaves the delete affecting no rows, which is logged only.
func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	find := query.FindComment(id)

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, find.SQL, find.Args...); err != nil {
		return fmt.Errorf("find comment %d: %w", id, err)
	}
	if _, err := exactlyOne(ids, MsgCommentNotFound); err != nil {
		return err
	}

	del := query.DeleteComment(id)
	result, err := r.db.ExecContext(ctx, del.SQL, del.Args...)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	switch {
	case err != nil:
		r.log.Warn().Err(err).Int64("comment_id", id).Msg("Could not read rows affected by comment delete")
	case n == 0:
		r.log.Warn().Int64("comment_id", id).Msg("Comment vanished between existence check and delete")
	}
	return nil
}
