package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenned/config"
	"zenned/internal/model"
	"zenned/internal/user"
	"zenned/pkg/log"
	"zenned/pkg/scope"
)

type mockUseCase struct {
	err        error
	settingsIn user.UpdateSettingsInput
	darkMode   bool
}

func (m *mockUseCase) Signup(ctx context.Context, in user.SignupInput) (user.SignupOutput, error) {
	return user.SignupOutput{User: model.User{ID: 5}, Token: "tok"}, m.err
}

func (m *mockUseCase) Login(ctx context.Context, in user.LoginInput) (user.LoginOutput, error) {
	return user.LoginOutput{User: model.User{ID: 5, Name: "Ann", DarkMode: true}, Token: "tok"}, m.err
}

func (m *mockUseCase) GetSettings(ctx context.Context, userID int64) (user.SettingsOutput, error) {
	return user.SettingsOutput{DarkMode: m.darkMode}, m.err
}

func (m *mockUseCase) UpdateSettings(ctx context.Context, in user.UpdateSettingsInput) error {
	m.settingsIn = in
	return m.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(uc user.UseCase, userID int64, method, path, body string) *httptest.ResponseRecorder {
	h := New(log.NewNop(), uc, config.CookieConfig{Name: "zenned_token"}, time.Hour)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID > 0 {
			c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), scope.Payload{UserID: userID}))
		}
		c.Next()
	})
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/settings", h.GetSettings)
	r.PATCH("/settings", h.UpdateSettings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	w := serve(&mockUseCase{}, 0, http.MethodPost, "/signup", `{"email":"a@b.c","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":5`)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "zenned_token=tok")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "bad json", body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing", body: `{}`, err: user.ErrMissingFields, wantCode: http.StatusBadRequest},
		{name: "taken", body: `{}`, err: user.ErrEmailTaken, wantCode: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&mockUseCase{err: tt.err}, 0, http.MethodPost, "/signup", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	w := serve(&mockUseCase{}, 0, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)
	assert.Contains(t, w.Body.String(), `"dark_mode":true`)

	w = serve(&mockUseCase{err: user.ErrUserNotFound}, 0, http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(&mockUseCase{err: user.ErrInvalidPassword}, 0, http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	w := serve(&mockUseCase{}, 0, http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestSettings(t *testing.T) {
	w := serve(&mockUseCase{darkMode: true}, 3, http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dark_mode":true`)

	w = serve(&mockUseCase{}, 0, http.MethodGet, "/settings", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	uc := &mockUseCase{}
	w = serve(uc, 3, http.MethodPatch, "/settings", `{"dark_mode":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.UpdateSettingsInput{UserID: 3, DarkMode: true}, uc.settingsIn)

	for _, body := range []string{`{}`, `{"dark_mode":"yes"}`, `{"dark_mode":null}`} {
		w = serve(&mockUseCase{}, 3, http.MethodPatch, "/settings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w = serve(&mockUseCase{err: user.ErrUserNotFound}, 3, http.MethodPatch, "/settings", `{"dark_mode":false}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
