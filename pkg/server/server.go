package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/permit-atlas/pkg/handlers/dashboard"
	permitmiddleware "github.com/de-tools/permit-atlas/pkg/server/middleware"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router http.Handler
	logger *zerolog.Logger
	server *http.Server
	config Config
}

type Dependencies struct {
	Dashboard dashboard.Service
	Logger    zerolog.Logger
	// Registry backs /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	registry := config.Dependencies.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	dashboardHandler := handlers.NewHandler(config.Dependencies.Dashboard)
	httpMetrics := permitmiddleware.NewHTTPMetrics(registry)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(permitmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(httpMetrics.Handler)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", dashboardHandler.GetReport)
		r.Get("/report/export", dashboardHandler.ExportReport)
		r.Get("/categories", dashboardHandler.ListCategories)
		r.Get("/windows", dashboardHandler.ListWindows)
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	return router
}

func NewWebAPI(config Config) *WebAPI {
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		config: config,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until the listener fails or the process receives SIGINT or SIGTERM.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.config.ShutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
