package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	comments service.CommentService
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments: services.Comment,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.comments.ListComments(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment handles POST /api/articles/:article_id/comments
// Body: {"username": "...", "body": "..."}
func (h *CommentHandler) AddComment(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comment, err := h.comments.AddComment(c.Request.Context(), c.Param("article_id"), body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.comments.DeleteComment(c.Request.Context(), c.Param("comment_id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
