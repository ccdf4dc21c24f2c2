package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperror"
	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/service"
	"github.com/news-forum-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger, health HealthChecker) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(recoveryMiddleware(log))
	router.Use(metricsMiddleware())
	router.Use(corsMiddleware(cfg.CORS))
	if cfg.RateLimit.RPS > 0 {
		router.Use(newRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).handler())
	}
	router.Use(bodyLimitMiddleware(cfg.Server.MaxBodyBytes))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": apperror.MsgPathNotFound})
	})

	// Handlers
	catalogueHandler := NewCatalogueHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Operational endpoints
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("", catalogueHandler.Endpoints)
		api.GET("/topics", catalogueHandler.ListTopics)
		api.GET("/users", catalogueHandler.ListUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateVotes)
			articles.GET("/:article_id/comments", commentHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.AddComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	return router
}

// healthCheck returns the health status, pinging the store when one is wired
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		state := "healthy"
		database := "up"

		if health == nil {
			database = "unknown"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := health.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				state = "unhealthy"
				database = "down"
			}
		}

		c.JSON(status, gin.H{
			"status":    state,
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   logger.ServiceName,
		})
	}
}

// corsMiddleware allows any origin unless an allow-list is configured
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}
