package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/shuv1824/islandmap/internal/handler"
	"github.com/shuv1824/islandmap/internal/metrics"
	"github.com/shuv1824/islandmap/internal/services/session"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the map API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run()
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	return cmd
}

func Run() error {
	viewerService := loadViewer(context.Background())
	slog.Info("Loaded islands", "count", len(viewerService.Islands()), "ports", len(viewerService.Ports()))
	metrics.IslandsLoaded.Set(float64(len(viewerService.Islands())))
	metrics.PortsLoaded.Set(float64(len(viewerService.Ports())))

	// Build marker layers before serving requests
	slog.Info("Warming layer cache...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := viewerService.WarmCache(ctx); err != nil {
		slog.Error("Warning: failed to warm cache", "error", err)
	} else {
		slog.Info("Cache warmed successfully")
	}
	cancel()

	sessions := session.NewStore(viewerService, cfg.SessionTTL)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(handler.NewIslandHandler(viewerService), handler.NewSessionHandler(sessions), cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("starting api server")
	return startServer(server)
}

func newRouter(islands *handler.IslandHandler, sessions *handler.SessionHandler, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(handler.Instrument)

	// Health check
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API v1 subrouter
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/regions", islands.Regions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{region}/districts", islands.Districts).Methods(http.MethodGet)
	api.HandleFunc("/islands", islands.Islands).Methods(http.MethodGet)
	api.HandleFunc("/islands/territorial", islands.Territorial).Methods(http.MethodGet)
	api.HandleFunc("/islands/viewport", islands.Viewport).Methods(http.MethodGet)
	api.HandleFunc("/islands/{id}", islands.Island).Methods(http.MethodGet)
	api.HandleFunc("/layers/{layer}", islands.Layer).Methods(http.MethodGet)
	api.HandleFunc("/basemaps", islands.Basemaps).Methods(http.MethodGet)

	// Viewer sessions
	api.HandleFunc("/sessions", sessions.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessions.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessions.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/events", sessions.Event).Methods(http.MethodPost)

	var h http.Handler = r

	// Recovery (catches panics)
	h = handlers.RecoveryHandler()(h)

	// CORS
	h = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)

	// Logging
	return handlers.LoggingHandler(os.Stdout, h)
}

func startServer(server *http.Server) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped gracefully")
	}

	return nil
}
