package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"hotelboard/config"
	_ "hotelboard/docs" // swagger spec
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/shared/constant"
	"hotelboard/transport/http/middleware"
	"hotelboard/transport/http/response"
	"hotelboard/transport/http/router"
	"hotelboard/transport/kafka"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	defaultHost       = "0.0.0.0"
	readHeaderTimeout = 10 * time.Second
	healthTimeout     = 2 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Otel       otel.Otel
	DB         *postgres.Connection
	Consumer   *kafka.Consumer
	state      atomic.Int32
	mux        *chi.Mux
	server     *http.Server
	routesOnce sync.Once
	stopEvents context.CancelFunc
}

func New(
	cfg *config.Config,
	r router.Router,
	m middleware.AppMiddleware,
	otel otel.Otel,
	db *postgres.Connection,
	consumer *kafka.Consumer,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: m,
		Otel:       otel,
		DB:         db,
		Consumer:   consumer,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	host := h.Config.Server.Host
	if host == constant.Empty {
		host = defaultHost
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP serves a single request without owning a listener, for
// serverless entrypoints.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.routesOnce.Do(h.prepare)

	h.mux.ServeHTTP(w, r)
}

// State reports the lifecycle phase; zero until routes are mounted.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.routesOnce.Do(h.prepare)
	h.setupGracefulShutdown()
	h.startConsumer()
}

func (h *HTTP) prepare() {
	h.setupRoutes()
	h.setState(ServerStateReady)
}

func (h *HTTP) startConsumer() {
	if h.Consumer == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.stopEvents = cancel

	go h.Consumer.Start(ctx)
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.Tracing)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.Middleware.RateLimit())

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.mux.Group(func(api chi.Router) {
		api.Use(h.Middleware.APIKey)
		api.Use(h.Middleware.Session)

		h.Router.SetupRoutes(api)
	})
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)
	defer h.release()

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// release stops accepting requests and consuming events, then flushes
// writers and spans and closes the pools.
func (h *HTTP) release() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown HTTP server")
		}
	}

	if h.stopEvents != nil {
		h.stopEvents()
	}

	if h.Consumer != nil {
		if err := h.Consumer.Client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka writers")
		}
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown tracer")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}
}
