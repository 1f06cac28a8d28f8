package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenned/internal/event"
	"zenned/internal/model"
	"zenned/pkg/log"
	"zenned/pkg/scope"
)

type mockUseCase struct {
	createIn  event.CreateInput
	updateIn  event.UpdateInput
	deleteIn  event.DeleteInput
	listOut   event.ListOutput
	exportOut event.ExportOutput
	err       error
}

func (m *mockUseCase) EnsureStore(ctx context.Context, userID int64) error { return m.err }

func (m *mockUseCase) List(ctx context.Context, in event.ListInput) (event.ListOutput, error) {
	return m.listOut, m.err
}

func (m *mockUseCase) Create(ctx context.Context, in event.CreateInput) (event.CreateOutput, error) {
	m.createIn = in
	return event.CreateOutput{ID: 42}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, in event.UpdateInput) error {
	m.updateIn = in
	return m.err
}

func (m *mockUseCase) Delete(ctx context.Context, in event.DeleteInput) error {
	m.deleteIn = in
	return m.err
}

func (m *mockUseCase) Export(ctx context.Context, in event.ExportInput) (event.ExportOutput, error) {
	return m.exportOut, m.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

// serve runs one request through a router that authenticates as userID
// (0 = anonymous).
func serve(uc event.UseCase, userID int64, method, path, body string) *httptest.ResponseRecorder {
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID > 0 {
			ctx := scope.SetPayloadToContext(c.Request.Context(), scope.Payload{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	r.GET("/events", h.List)
	r.POST("/events", h.Create)
	r.GET("/events/export.ics", h.Export)
	r.PATCH("/events/:id", h.Update)
	r.DELETE("/events/:id", h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		ErrorCode int            `json:"error_code"`
		Message   string         `json:"message"`
		Data      map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(uc, 7, http.MethodPost, "/events", `{"title":"Gym","date":"2024-03-04","start_time":"09:00","end_time":"10:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(42), decodeData(t, w)["inserted_id"])
	assert.Equal(t, int64(7), uc.createIn.UserID)
	assert.Equal(t, "09:00", uc.createIn.StartTime)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "anonymous", userID: 0, body: `{}`, wantCode: http.StatusUnauthorized},
		{name: "bad json", userID: 1, body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing title", userID: 1, body: `{}`, ucErr: event.ErrMissingTitle, wantCode: http.StatusBadRequest},
		{name: "storage failure", userID: 1, body: `{"title":"x"}`, ucErr: context.DeadlineExceeded, wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&mockUseCase{err: tt.ucErr}, tt.userID, http.MethodPost, "/events", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestList(t *testing.T) {
	uc := &mockUseCase{listOut: event.ListOutput{Events: []model.Event{
		{ID: 1, Title: "Gym", Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Title: "Idea"},
	}}}
	w := serve(uc, 7, http.MethodGet, "/events?from=2024-03-01", "")

	require.Equal(t, http.StatusOK, w.Code)
	events := decodeData(t, w)["events"].([]any)
	require.Len(t, events, 2)
	note := events[1].(map[string]any)
	assert.Nil(t, note["event_date"])
	assert.Nil(t, note["start_time"])
}

func TestUpdate(t *testing.T) {
	t.Run("null clears, absent is ignored", func(t *testing.T) {
		uc := &mockUseCase{}
		w := serve(uc, 7, http.MethodPatch, "/events/3", `{"start_time":null,"completed":true}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(3), uc.updateIn.ID)
		require.NotNil(t, uc.updateIn.StartTime)
		assert.Equal(t, "", uc.updateIn.StartTime.Value)
		assert.Nil(t, uc.updateIn.EndTime)
		require.NotNil(t, uc.updateIn.Completed)
		assert.True(t, *uc.updateIn.Completed)
	})

	t.Run("bad id", func(t *testing.T) {
		w := serve(&mockUseCase{}, 7, http.MethodPatch, "/events/abc", `{"completed":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no fields", func(t *testing.T) {
		w := serve(&mockUseCase{err: event.ErrNoFieldsToUpdate}, 7, http.MethodPatch, "/events/3", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := serve(&mockUseCase{err: event.ErrEventNotFound}, 7, http.MethodPatch, "/events/3", `{"completed":false}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	w := serve(uc, 7, http.MethodDelete, "/events/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, event.DeleteInput{UserID: 7, ID: 5}, uc.deleteIn)

	w = serve(&mockUseCase{err: event.ErrEventNotFound}, 7, http.MethodDelete, "/events/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport(t *testing.T) {
	uc := &mockUseCase{exportOut: event.ExportOutput{Filename: "zenned-7.ics", Content: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}}
	w := serve(uc, 7, http.MethodGet, "/events/export.ics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "zenned-7.ics")
	assert.True(t, strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR"))
}
