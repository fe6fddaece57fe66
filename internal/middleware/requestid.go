package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, stored under RequestIDKey and echoed in the
// X-Request-ID response header.
//
// A well-formed UUID sent by the client in X-Request-ID is reused so that a dashboard
// call can be followed across services; anything else is replaced by a new v4 UUID.
//
// Example log usage:
//
//	rid := c.GetString(middleware.RequestIDKey)
//	logger.L().Info().Str("request_id", rid).Msg("...")
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil || id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
