package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperror"
	"github.com/rs/zerolog"
)

const msgBodyTooLarge = "request body too large"

// respondError is the one place a failure becomes an HTTP response. Details
// of unclassified failures are logged and never sent to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status, msg, known := apperror.Classify(err)
	if !known {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Unclassified failure")
	}
	c.JSON(status, gin.H{"msg": msg})
}

// readBody returns the raw request body. Hitting the size cap is reported as
// 413; other read failures fall through to the classifier.
func readBody(c *gin.Context) ([]byte, error) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &apperror.Error{Status: http.StatusRequestEntityTooLarge, Msg: msgBodyTooLarge}
		}
		return nil, err
	}
	return body, nil
}
