package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"draft-server/internal/draftapi"
	"draft-server/internal/platform/config"
	"draft-server/internal/platform/logger"
	"draft-server/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")
	logRequests := config.GetEnvBool("LOG_REQUESTS", true)
	defaultWidth := config.GetEnvInt("DEFAULT_DRAFT_WIDTH", draftapi.DefaultDraftWidth)
	defaultHeight := config.GetEnvInt("DEFAULT_DRAFT_HEIGHT", draftapi.DefaultDraftHeight)

	log := logger.New(logLevel, logFormat)

	reg := draftapi.NewRegistry()
	svc := draftapi.NewService(reg, defaultWidth, defaultHeight)
	met := metrics.New()
	h := draftapi.NewHandler(svc, log, met)

	r := chi.NewRouter()
	if logRequests {
		r.Use(logger.RequestLogger(log))
	}
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		met.Handler(func() { met.SetActiveDrafts(reg.ActiveDraftCount()) }).ServeHTTP(w, req)
	})
	h.Routes(r)

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", port,
		"default_width", defaultWidth,
		"default_height", defaultHeight,
		"log_level", logLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
