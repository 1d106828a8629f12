package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"social-sentiment-dashboard/internal/dashboard"
	"social-sentiment-dashboard/internal/logger"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	must(initializeSystem())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	must(err)

	fetcher, err := initializeFetcher(ctx, cfg)
	must(err)

	p := initializePipeline(cfg, fetcher)

	gin.SetMode(gin.ReleaseMode)
	srv := dashboard.NewServer(cfg, p).HTTPServer()

	errc := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Dashboard started", "addr", cfg.Server.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.ErrorWithErr(ctx, "Server failed", err)
		}
	case <-ctx.Done():
		logger.Info(context.Background(), "Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WarnWithErr(shutdownCtx, "Graceful shutdown failed", err)
	}
	shutdownSystem(shutdownCtx)
}
