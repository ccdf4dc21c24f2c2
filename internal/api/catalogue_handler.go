package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

//go:embed endpoints.json
var endpointsJSON []byte

// CatalogueHandler serves the read-only reference listings: topics, users
// and the endpoint catalogue itself.
type CatalogueHandler struct {
	topics service.TopicService
	users  service.UserService
	log    zerolog.Logger
}

// NewCatalogueHandler creates a new CatalogueHandler
func NewCatalogueHandler(services *service.Services, log zerolog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		topics: services.Topic,
		users:  services.User,
		log:    log.With().Str("handler", "catalogue").Logger(),
	}
}

// Endpoints handles GET /api
func (h *CatalogueHandler) Endpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}

// ListTopics handles GET /api/topics
func (h *CatalogueHandler) ListTopics(c *gin.Context) {
	topics, err := h.topics.ListTopics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// ListUsers handles GET /api/users
func (h *CatalogueHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
