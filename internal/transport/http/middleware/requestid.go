package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// RequestID propagates an inbound request id or mints a fresh one. The id is
// echoed on the response header and stashed in the context for the access log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id RequestID stored on the context, or "" when
// the middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(KeyRequestID)
}
