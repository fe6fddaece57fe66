package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/b3charts/internal/logger"
)

// RecoveryMiddleware recovers from panics in handlers, logs the stack trace and
// answers 500 with a dto.ErrorResponse.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			// a client that went away is not worth a stack trace
			if r == http.ErrAbortHandler {
				c.Abort()
				return
			}

			logger.L().Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			AbortWithError(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", r))
		}()

		c.Next()
	}
}
