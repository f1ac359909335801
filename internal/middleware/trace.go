package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const RequestIdKey = "Request-Id"

// Trace stamps every request with a sortable id so log lines across the
// layers can be correlated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = ulid.Make().String()
		}
		c.Set(RequestIdKey, requestId)
		c.Writer.Header().Set("X-Request-Id", requestId)
		c.Next()
	}
}
