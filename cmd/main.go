package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/config"
	"github.com/ukydev/study-air/internal/db"
	"github.com/ukydev/study-air/internal/handlers"
)

func newServer(cfg config.Config, store db.Store) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := handlers.NewRouter(handlers.New(store), handlers.RouterOptions{
		CORSOrigins: cfg.CORSOrigins,
		Registry:    reg,
		Logger:      log.StandardLogger(),

		RateLimit:       cfg.RateLimitRequests,
		RateLimitWindow: cfg.RateLimitWindow,
	})

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func main() {
	cfg := config.Load()
	cfg.ConfigureLogger()

	// The store is fully constructed before the first request is accepted.
	store := db.Open(context.Background(), cfg)
	log.WithField("mode", store.Mode()).Info("Document store ready")

	srv := newServer(cfg, store)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-stop
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Shutdown error")
	}
	if err := store.Close(ctx); err != nil {
		log.WithError(err).Error("Failed to close document store")
	}
	log.Info("Server stopped")
}
