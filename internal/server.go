package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/plainsite/internal/config"
	"github.com/2beens/plainsite/internal/layout"
	"github.com/2beens/plainsite/internal/middleware"
	"github.com/2beens/plainsite/internal/page"
	"github.com/2beens/plainsite/internal/session"
	"github.com/2beens/plainsite/internal/site"
	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/internal/telemetry/tracing"
	"github.com/2beens/plainsite/internal/users"
	"github.com/2beens/plainsite/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "plainsite"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	userBackend *UserStoreBackend
	userStore   users.Store
	hasher      *pkg.BcryptHasher
	sessions    *session.MemoryRegistry
	static      *site.StaticFiles

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	tracingEnabled := params.HoneycombTracingEnabled || cfg.TracingEnabled

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(tracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		hasher:       pkg.NewBcryptHasher(cfg.BcryptCost),
		sessions:     session.NewMemoryRegistry(),
		otelShutdown: otelShutdown,
	}

	s.userBackend, err = OpenUserStore(ctx, OpenUserStoreParams{
		Config:           cfg,
		PostgresPassword: params.PostgresPassword,
		RedisPassword:    params.RedisPassword,
		TracingEnabled:   tracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}
	s.userStore = s.userBackend.Store

	s.promRegistry = metrics.SetupPrometheus(s.userBackend.Collectors...)
	s.metricsManager = metrics.NewManager(serviceName, "main", s.promRegistry)
	s.metricsManager.RegisterActiveSessions(s.sessions.Count)

	s.static, err = site.NewStaticFiles(cfg.PublicDir, cfg.StaticCacheSizeMB, s.metricsManager)
	if err != nil {
		s.userBackend.Close()
		return nil, fmt.Errorf("static files: %w", err)
	}

	return s, nil
}

// Routes returns the route allow-list. Nothing outside of it is ever dispatched.
func (s *Server) Routes() map[string]site.Route {
	getOnly := []string{http.MethodGet, http.MethodHead}
	getAndPost := []string{http.MethodGet, http.MethodHead, http.MethodPost}

	return map[string]site.Route{
		"/": {
			Page:    page.NewHome(),
			Methods: getOnly,
		},
		"/login": {
			Page:    page.NewLogin(s.userStore, s.hasher, s.sessions, s.metricsManager),
			Methods: getAndPost,
		},
		"/register": {
			Page:    page.NewRegister(s.userStore, s.hasher, s.sessions, s.metricsManager),
			Methods: getAndPost,
		},
		"/profile": {
			Page:    page.NewProfile(s.sessions),
			Methods: getOnly,
		},
		"/logout": {
			Page:    page.NewLogout(s.sessions, s.metricsManager),
			Methods: getOnly,
		},
	}
}

func (s *Server) routerSetup() *mux.Router {
	dispatcher := site.NewDispatcher(
		s.Routes(),
		s.static,
		layout.NewRenderer(s.sessions, s.config.SiteName),
		s.metricsManager,
	)

	r := dispatcher.Router()
	r.Use(otelmux.Middleware("main-router"))
	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Handler returns the fully wired site handler.
func (s *Server) Handler() http.Handler {
	return s.routerSetup()
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, the stores below are still in use until then
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	s.userBackend.Close()

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
