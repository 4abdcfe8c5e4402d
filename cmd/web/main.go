package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fanvue-front/cmd/internal/logger"
	"fanvue-front/cmd/web/router"
	"fanvue-front/config"
)

// @title           Fanvue Front Page Data API
// @version         1.0
// @description     JSON view of the records embedded in the server-rendered feed and vault pages
// @BasePath        /api/v1
func main() {
	if err := config.InitApp(); err != nil {
		logger.Log.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	cfg := config.GetConfig()
	logger.InitFromEnv("LOG_LEVEL", cfg.Logging.Level)
	logger.SetServiceName(cfg.Logging.ServiceName)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.InfoWithFields("web server listening", logger.Fields{
			"addr":     cfg.Server.Addr,
			"upstream": cfg.Upstream.BaseURL,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("web server error: %v", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
		return
	}
	logger.Log.Info("web server stopped")
}
