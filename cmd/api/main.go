package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Tubbz-alt/email-alert-frontend/internal/config"
	"github.com/Tubbz-alt/email-alert-frontend/internal/i18n"
	"github.com/Tubbz-alt/email-alert-frontend/internal/infra/contentstore"
	"github.com/Tubbz-alt/email-alert-frontend/internal/infra/emailalertapi"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/logging"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/tracing"

	manageUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/manage"
	signupUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/signup"

	hhttp "github.com/Tubbz-alt/email-alert-frontend/internal/handler/http"
	hauth "github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/auth"
	hmanage "github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/manage"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/requestid"
	hsignup "github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/signup"

	_ "github.com/Tubbz-alt/email-alert-frontend/docs" // swagger docs
)

// @title           Email Alert Frontend API
// @version         1.0
// @description     Email alert signup and subscription management.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Subscriber token. Send it as "Bearer {token}".

func main() {
	cfg := loadConfig()
	logger := initLogger(cfg)

	shutdownTracing := tracing.Setup(cfg.Version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(cfg, logger)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(cfg, logger, handler)
}

// loadConfig reads and validates configuration. Problems are logged with a
// bootstrap logger because the configured one does not exist yet.
func loadConfig() *config.App {
	boot := logging.New(os.Stderr, config.DefaultLogLevel)

	cfg, warnings, err := config.Load()
	if err != nil {
		boot.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	for _, w := range warnings {
		boot.Warn("configuration fallback applied", slog.String("key", w.Key), slog.String("detail", w.Message))
	}
	config.RecordLoad(warnings)

	if err := cfg.Validate(); err != nil {
		boot.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger(cfg *config.App) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// setupServer builds the upstream clients, use cases, routes and middleware.
func setupServer(cfg *config.App, logger *slog.Logger) (http.Handler, error) {
	catalog, err := i18n.Load(cfg.Locale)
	if err != nil {
		return nil, err
	}

	emailAlertAPI, err := emailalertapi.New(emailalertapi.Config{
		BaseURL:     cfg.EmailAlertAPI.URL,
		BearerToken: cfg.EmailAlertAPIBearerToken,
		Timeout:     cfg.EmailAlertAPI.Timeout,
	})
	if err != nil {
		return nil, err
	}
	contentStore, err := contentstore.New(contentstore.Config{
		BaseURL: cfg.ContentStore.URL,
		Timeout: cfg.ContentStore.Timeout,
	})
	if err != nil {
		return nil, err
	}

	signupSvc := &signupUC.Service{Content: contentStore, Lists: emailAlertAPI}
	manageSvc := &manageUC.Service{API: emailAlertAPI, Catalog: catalog}

	mux := http.NewServeMux()
	hsignup.Register(mux, signupSvc, catalog)
	hmanage.Register(mux, manageSvc, hauth.RequireSubscriber([]byte(cfg.SubscriberAuthSecret)))

	deps := []hhttp.Dependency{
		{Name: "email_alert_api", Pinger: emailAlertAPI},
		{Name: "content_store", Pinger: contentStore},
	}
	mux.Handle("GET /health", &hhttp.HealthHandler{Dependencies: deps, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Dependencies: deps})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	if cfg.SwaggerEnabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	logger.Info("routes registered",
		slog.String("locale", catalog.Locale()),
		slog.Bool("swagger", cfg.SwaggerEnabled))

	return applyMiddleware(cfg, logger, mux), nil
}

// applyMiddleware wraps handler with the middleware chain.
// Order, outermost first: Request ID → Tracing → Recovery → Logging → Metrics →
// Security headers → Request size limits → Body limit → Timeout.
func applyMiddleware(cfg *config.App, logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied innermost to outermost
	chain = hhttp.Timeout(cfg.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.LimitRequestSize(chain)
	chain = hhttp.SecurityHeaders(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func runServer(cfg *config.App, logger *slog.Logger, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
