package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	platformlogging "github.com/zenGate-Global/yt-http-gateway/platform/go/logging"
	"github.com/zenGate-Global/yt-http-gateway/platform/go/metrics"
	"github.com/zenGate-Global/yt-http-gateway/platform/go/upstream"
)

type config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	UpstreamURL     string        `env:"UPSTREAM_URL,required,notEmpty"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	PreflightStatus int           `env:"PREFLIGHT_STATUS" envDefault:"200"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	if cfg.PreflightStatus < 200 || cfg.PreflightStatus > 299 {
		return config{}, fmt.Errorf("PREFLIGHT_STATUS %d: must be a 2xx status", cfg.PreflightStatus)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "http-proxy-edge",
		Level:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	target, err := upstream.ParseTarget(cfg.UpstreamURL)
	if err != nil {
		logger.Fatal("invalid UPSTREAM_URL", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, logger, upstream.New(target, logger), m),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("starting http proxy edge",
			zap.String("port", cfg.Port),
			zap.String("upstream", target.String()),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
