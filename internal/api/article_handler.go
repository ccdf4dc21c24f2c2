package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	articles service.ArticleService
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: services.Article,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles
// Query: topic, sort_by, order, limit
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	params := models.ArticleListParams{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
	}

	articles, err := h.articles.ListArticles(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articles.GetArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.articles.UpdateVotes(c.Request.Context(), c.Param("article_id"), body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
