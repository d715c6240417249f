package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai_site_builder/internal/logger"
)

// RequestIDHeader carries the per-request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a uuid, reusing a well-formed incoming
// one, and stores a logger carrying it in the request context.
func RequestID(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		ctx := logger.ToContext(c.Request.Context(), log.With(zap.String("request_id", id)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
