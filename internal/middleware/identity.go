package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-Key"
	SessionCookie = "session_key"
	sessionQuery  = "session_key"
	callerIDKey   = "caller_id"
)

type SessionResolver interface {
	ResolveUserID(ctx context.Context, sessionKey string) (string, error)
}

// IdentityMiddleware attaches the caller's user id when the request carries
// a live session key. An unknown or expired key leaves the caller anonymous.
func IdentityMiddleware(resolver SessionResolver, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Sugar()
	return func(c *gin.Context) {
		key := SessionKey(c)
		if key == "" {
			c.Next()
			return
		}

		userID, err := resolver.ResolveUserID(c.Request.Context(), key)
		if err != nil {
			log.Debugw("Identity: session not resolved", "error", err)
			c.Next()
			return
		}
		c.Set(callerIDKey, userID)
		c.Next()
	}
}

// SessionKey reads the key from the header, then the cookie, then the query.
func SessionKey(c *gin.Context) string {
	if key := c.GetHeader(SessionHeader); key != "" {
		return key
	}
	if key, err := c.Cookie(SessionCookie); err == nil && key != "" {
		return key
	}
	return c.Query(sessionQuery)
}

// CallerID returns the authenticated user id, or nil for anonymous callers.
func CallerID(c *gin.Context) *string {
	v, ok := c.Get(callerIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}

func SetCallerID(c *gin.Context, userID string) {
	c.Set(callerIDKey, userID)
}
