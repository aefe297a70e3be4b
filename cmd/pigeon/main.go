// Command pigeon runs the Pixel Pigeon mail gateway: a token-authenticated
// HTTP endpoint that relays title/message payloads as formatted HTML email
// over SMTP.
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

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/oralcagan/pixel-pigeon/internal/adapter/email"
	pigeonhttp "github.com/oralcagan/pixel-pigeon/internal/adapter/http"
	pigeonotel "github.com/oralcagan/pixel-pigeon/internal/adapter/otel"
	"github.com/oralcagan/pixel-pigeon/internal/config"
	"github.com/oralcagan/pixel-pigeon/internal/logger"
	"github.com/oralcagan/pixel-pigeon/internal/middleware"
	"github.com/oralcagan/pixel-pigeon/internal/render"
	"github.com/oralcagan/pixel-pigeon/internal/service"
	"github.com/oralcagan/pixel-pigeon/internal/tokens"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))
	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"smtp_host", cfg.SMTP.Host,
		"smtp_port", cfg.SMTP.Port,
		"from", cfg.SMTP.From,
		"token_file", cfg.Tokens.File,
		"logo_path", cfg.Logo.Path,
	)

	// Token config is required at startup; a broken file is fatal here
	// rather than a surprise at request time.
	store, err := tokens.Open(cfg.Tokens.File)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	slog.Info("token config loaded", "tokens", store.Count())

	ctx := context.Background()

	shutdownTelemetry, err := pigeonotel.Setup(ctx, cfg.Logging.Service, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	metrics, err := pigeonotel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	relay := email.New(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Timeout:  cfg.SMTP.SendTimeout,
	})

	sendSvc := service.NewSendService(render.New(cfg.Logo.Path), relay, cfg.SMTP.From, metrics)

	handlers := &pigeonhttp.Handlers{
		Sender:   sendSvc,
		Tokens:   store,
		LogoPath: cfg.Logo.Path,
		Version:  version,
	}

	r := chi.NewRouter()

	r.Use(pigeonhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(pigeonhttp.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(pigeonhttp.Logger)
	r.Use(pigeonotel.HTTPMiddleware(cfg.Logging.Service))
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	pigeonhttp.MountRoutes(r, handlers, middleware.Auth(store))

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// SIGHUP reloads the token file; SIGINT/SIGTERM shut down.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	for sig := range sigs {
		if sig == syscall.SIGHUP {
			if err := store.Reload(); err != nil {
				slog.Error("token reload failed, keeping previous config", "error", err)
			} else {
				slog.Info("token config reloaded", "tokens", store.Count())
			}
			continue
		}
		break
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
