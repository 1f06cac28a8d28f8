package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"zenned/pkg/response"
	"zenned/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the access token from the Authorization header or, failing
// that, the auth cookie, and stores its payload in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.tokenFromRequest(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))
		c.Next()
	}
}

func (m Middleware) tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if m.cookieConfig.Name == "" {
		return ""
	}
	token, err := c.Cookie(m.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return token
}
