package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"zenned/internal/event"
	eventHTTP "zenned/internal/event/delivery/http"
	eventRepo "zenned/internal/event/repository/postgre"
	eventUC "zenned/internal/event/usecase"
	"zenned/internal/middleware"
	scheduleHTTP "zenned/internal/schedule/delivery/http"
	scheduleUC "zenned/internal/schedule/usecase"
	userHTTP "zenned/internal/user/delivery/http"
	userRepo "zenned/internal/user/repository/postgre"
	userUC "zenned/internal/user/usecase"
)

// setupEventDomain registers /api/v1/events and returns the use case the
// other domains build on.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) event.UseCase {
	repo := eventRepo.New(srv.postgresDB, srv.l)
	uc := eventUC.New(repo, srv.l, srv.clock, srv.calendar)
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Event domain registered (Google Calendar mirror on)")
	} else {
		srv.l.Infof(ctx, "Event domain registered")
	}
	return uc
}

// setupUserDomain registers /api/v1/auth and /api/v1/users.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, events event.UseCase) {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.l, srv.encrypter, srv.jwtManager, events)
	h := userHTTP.New(srv.l, uc, srv.cookie, srv.tokenTTL)
	userHTTP.RegisterRoutes(api, h, mw, srv.loginRate)

	srv.l.Infof(ctx, "User domain registered")
}

// setupScheduleDomain registers /api/v1/schedule.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, events event.UseCase) {
	uc := scheduleUC.New(srv.l, srv.completer, events, srv.clock, srv.metrics, scheduleUC.Config{
		Temperature: srv.schedule.Temperature,
		TopP:        srv.schedule.TopP,
		MaxTokens:   srv.schedule.MaxTokens,
		MaxWeeks:    srv.schedule.MaxWeeks,
	})
	h := scheduleHTTP.New(srv.l, uc)
	scheduleHTTP.RegisterRoutes(api, h, mw, srv.schedule.RateLimitPerMin)

	if !srv.completer.Configured() {
		srv.l.Warnf(ctx, "Schedule domain registered without AI provider credentials; imports will fail")
		return
	}
	srv.l.Infof(ctx, "Schedule domain registered")
}
