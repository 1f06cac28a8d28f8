package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenned/config"
	"zenned/pkg/log"
	"zenned/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestMiddleware() (Middleware, scope.Manager) {
	jwt := scope.New("test-secret", time.Hour)
	return New(log.NewNop(), jwt, config.CookieConfig{Name: "zenned_token"}), jwt
}

func whoami(c *gin.Context) {
	p, _ := scope.GetPayloadFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"user_id": p.UserID})
}

func TestAuth(t *testing.T) {
	mw, jwt := newTestMiddleware()
	token, err := jwt.CreateToken(scope.Payload{UserID: 9})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", mw.Auth(), whoami)

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantCode int
	}{
		{name: "no token", setup: func(*http.Request) {}, wantCode: http.StatusUnauthorized},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, wantCode: http.StatusOK},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "zenned_token", Value: token}) }, wantCode: http.StatusOK},
		{name: "bad token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) }, wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"user_id":9}`, w.Body.String())
			}
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	mw, _ := newTestMiddleware()
	r := gin.New()
	// 6/min gives a burst of 1.
	r.GET("/login", mw.RateLimitByIP(6), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}

func TestRateLimitByUser(t *testing.T) {
	mw, jwt := newTestMiddleware()
	r := gin.New()
	r.POST("/import", mw.Auth(), mw.RateLimitByUser(6), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(userID int64) int {
		token, _ := jwt.CreateToken(scope.Payload{UserID: userID})
		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(1))
	assert.Equal(t, http.StatusTooManyRequests, do(1))
	assert.Equal(t, http.StatusOK, do(2))
}

func TestRateLimit_Disabled(t *testing.T) {
	mw, _ := newTestMiddleware()
	r := gin.New()
	r.GET("/x", mw.RateLimitByIP(0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw, _ := newTestMiddleware()
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})

	t.Run("honours incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
	})
}
