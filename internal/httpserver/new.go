package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"zenned/config"
	"zenned/internal/metrics"
	scheduleUC "zenned/internal/schedule/usecase"
	"zenned/pkg/datemath"
	"zenned/pkg/encrypter"
	"zenned/pkg/gcalendar"
	"zenned/pkg/log"
	"zenned/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage and auth
	postgresDB *sql.DB
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	cookie     config.CookieConfig
	tokenTTL   time.Duration
	loginRate  int

	// Events and schedule import
	clock     *datemath.Clock
	calendar  gcalendar.IGCalendar
	completer scheduleUC.Completer
	schedule  config.ScheduleConfig

	// Observability
	metrics  *metrics.ScheduleMetrics
	gatherer prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	Cookie     config.CookieConfig
	TokenTTL   time.Duration
	// LoginRateLimitPerMin limits login attempts per client IP. 0 disables it.
	LoginRateLimitPerMin int

	Clock *datemath.Clock
	// Calendar is optional. When nil created events are not mirrored.
	Calendar  gcalendar.IGCalendar
	Completer scheduleUC.Completer
	Schedule  config.ScheduleConfig

	Metrics *metrics.ScheduleMetrics
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		jwtManager:      cfg.JWTManager,
		encrypter:       cfg.Encrypter,
		cookie:          cfg.Cookie,
		tokenTTL:        cfg.TokenTTL,
		loginRate:       cfg.LoginRateLimitPerMin,
		clock:           cfg.Clock,
		calendar:        cfg.Calendar,
		completer:       cfg.Completer,
		schedule:        cfg.Schedule,
		metrics:         cfg.Metrics,
		gatherer:        cfg.Gatherer,
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.clock == nil {
		return errors.New("clock is required")
	}
	if srv.completer == nil {
		return errors.New("completer is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
