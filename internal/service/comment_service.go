package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListComments returns an article's comments. The article ID is the parent
// segment of a nested route, so a malformed one reports as a URL fault.
func (s *commentService) ListComments(ctx context.Context, rawArticleID string) ([]models.Comment, error) {
	articleID, err := validation.ParseID(rawArticleID, validation.MsgURLIDType)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// AddComment validates the path ID and payload, then inserts. A missing
// article or author surfaces from the store as a foreign key violation.
func (s *commentService) AddComment(ctx context.Context, rawArticleID string, body []byte) (*models.Comment, error) {
	articleID, err := validation.ParseID(rawArticleID, validation.MsgURLIDType)
	if err != nil {
		return nil, err
	}
	payload, err := validation.ParseNewComment(body)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, articleID, *payload)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", comment.CommentID).
		Int64("article_id", articleID).
		Str("author", comment.Author).
		Msg("Comment created")
	return comment, nil
}

// DeleteComment removes a comment after validating its ID. An unknown ID
// is a 404.
func (s *commentService) DeleteComment(ctx context.Context, rawCommentID string) error {
	id, err := validation.ParseCommentID(rawCommentID)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	return nil
}
