// Package middleware holds the gin middleware stack for the API server.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in and out of the service.
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the gin context key set by RequestID.
	ContextKeyRequestID = "request_id"
)

// RequestID assigns every request an id, honoring one supplied by the
// caller so ids correlate across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
