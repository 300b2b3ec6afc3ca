// Package config loads the frontend's runtime configuration.
//
// Values are layered: built-in defaults, then an optional YAML file named by
// CONFIG_FILE, then environment variables. Secrets are read from the
// environment only. Malformed values fall back to the previous layer and are
// reported as warnings rather than failing startup; Validate decides whether
// the resulting configuration is usable.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/auth"
)

// Defaults applied before any file or environment value.
const (
	DefaultHTTPAddr        = ":8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultMaxBodyBytes    = 64 << 10
	DefaultUpstreamTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultLocale          = "en"
	DefaultVersion         = "dev"
)

// Upstream describes one backing HTTP service.
type Upstream struct {
	URL     string
	Timeout time.Duration
}

// App is the complete runtime configuration.
type App struct {
	HTTPAddr        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	EmailAlertAPI            Upstream
	EmailAlertAPIBearerToken string
	ContentStore             Upstream

	// SubscriberAuthSecret signs the tokens that identify subscribers on the
	// management routes.
	SubscriberAuthSecret string

	LogLevel       string
	Locale         string
	Version        string
	SwaggerEnabled bool
}

// Defaults returns an App holding only built-in defaults.
func Defaults() App {
	return App{
		HTTPAddr:        DefaultHTTPAddr,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		EmailAlertAPI:   Upstream{Timeout: DefaultUpstreamTimeout},
		ContentStore:    Upstream{Timeout: DefaultUpstreamTimeout},
		LogLevel:        DefaultLogLevel,
		Locale:          DefaultLocale,
		Version:         DefaultVersion,
	}
}

// Validate reports every problem with the configuration at once.
func (a *App) Validate() error {
	var errs []error

	if strings.TrimSpace(a.HTTPAddr) == "" {
		errs = append(errs, errors.New("HTTP_ADDR is required"))
	}
	if err := validateUpstreamURL(EnvEmailAlertAPIURL, a.EmailAlertAPI.URL); err != nil {
		errs = append(errs, err)
	}
	if err := validateUpstreamURL(EnvContentStoreURL, a.ContentStore.URL); err != nil {
		errs = append(errs, err)
	}
	if a.EmailAlertAPIBearerToken == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvEmailAlertAPIToken))
	}
	if err := auth.ValidateSecret(a.SubscriberAuthSecret); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvSubscriberAuthSecret, err))
	}
	if err := validateDurationRange(a.RequestTimeout, time.Second, 2*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvRequestTimeout, err))
	}
	if err := validatePositiveDuration(a.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvShutdownTimeout, err))
	}
	if err := validatePositiveDuration(a.EmailAlertAPI.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvEmailAlertAPITimeout, err))
	}
	if err := validatePositiveDuration(a.ContentStore.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvContentStoreTimeout, err))
	}
	if a.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvMaxBodyBytes, a.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

func validateUpstreamURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", key, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", key)
	}
	return nil
}

func validatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

func validateDurationRange(d, min, max time.Duration) error {
	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}
	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}
	return nil
}
