package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/report-deck/pkg/services/assistant"
	"github.com/de-tools/report-deck/pkg/services/viz"
	"github.com/de-tools/report-deck/pkg/store/session"
	"github.com/de-tools/report-deck/pkg/store/upstream"

	handlers "github.com/de-tools/report-deck/pkg/handlers/report"

	reportdeckmiddleware "github.com/de-tools/report-deck/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Sessions session.Store
	Upstream upstream.Client
	Renderer viz.Renderer
	Gateway  assistant.Gateway
}
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Sessions, deps.Upstream, deps.Renderer, deps.Gateway)

	router := chi.NewRouter()

	router.Use(reportdeckmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/sessions/{session}", func(r chi.Router) {
		r.Use(reportdeckmiddleware.Session())
		r.Post("/report", reportHandler.FetchReport)
		r.Get("/report", reportHandler.GetReport)
		r.Get("/report/panels", reportHandler.GetPanels)
		r.Get("/report/panels/{panel}/export", reportHandler.ExportPanel)
		r.Post("/chat", reportHandler.Chat)
		r.Post("/visualize", reportHandler.Visualize)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
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
