package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/espritmobile/hackhub/internal/config"
	"github.com/espritmobile/hackhub/internal/db"
	httpx "github.com/espritmobile/hackhub/internal/http"
	"github.com/espritmobile/hackhub/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	// tracing
	shutdownTracer, err := observability.InitTracer(context.Background(), "hackhub-api", cfg.OTLPEndpoint)

	if err != nil {
		log.Warn("tracing disabled", "err", err)
		shutdownTracer = nil
	}

	// connect to the document store
	client, mdb, err := db.Connect(cfg.MongoURI, cfg.MongoDatabase)

	if err != nil {
		log.Error("mongodb connection failed", "err", err)
		os.Exit(1)
	}

	ictx, cancelIdx := config.WithTimeout(10 * time.Second)

	err = db.EnsureIndexes(ictx, mdb)

	cancelIdx()

	if err != nil {
		log.Error("index bootstrap failed", "err", err)
		os.Exit(1)
	}

	// metrics
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// set up routers
	router, err := httpx.NewRouter(cfg, mdb, prom, reg)

	if err != nil {
		log.Error("router setup failed", "err", err)
		os.Exit(1)
	}

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server using a concurrent go-routine driven anonymous function.

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if shutdownTracer != nil {
			err = shutdownTracer(ctx)

			if err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}

		err = client.Disconnect(ctx)

		if err != nil {
			log.Error("mongodb disconnect failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
