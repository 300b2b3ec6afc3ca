package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by Load.
const (
	EnvConfigFile           = "CONFIG_FILE"
	EnvHTTPAddr             = "HTTP_ADDR"
	EnvRequestTimeout       = "REQUEST_TIMEOUT"
	EnvShutdownTimeout      = "SHUTDOWN_TIMEOUT"
	EnvMaxBodyBytes         = "MAX_BODY_BYTES"
	EnvEmailAlertAPIURL     = "EMAIL_ALERT_API_URL"
	EnvEmailAlertAPIToken   = "EMAIL_ALERT_API_BEARER_TOKEN"
	EnvEmailAlertAPITimeout = "EMAIL_ALERT_API_TIMEOUT"
	EnvContentStoreURL      = "CONTENT_STORE_URL"
	EnvContentStoreTimeout  = "CONTENT_STORE_TIMEOUT"
	EnvSubscriberAuthSecret = "SUBSCRIBER_AUTH_SECRET"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLocale               = "LOCALE"
	EnvVersion              = "VERSION"
	EnvSwaggerEnabled       = "SWAGGER_ENABLED"
)

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Warning describes a value that was ignored in favour of a fallback.
type Warning struct {
	Key     string
	Message string
}

func (w Warning) String() string {
	return w.Key + ": " + w.Message
}

// Load builds the configuration from the process environment.
func Load() (*App, []Warning, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds the configuration using lookup for environment access.
// It does not call Validate.
func LoadFrom(lookup LookupFunc) (*App, []Warning, error) {
	app := Defaults()
	env := &envReader{lookup: lookup}

	if path := env.str(EnvConfigFile, ""); path != "" {
		f, err := readFile(path)
		if err != nil {
			return nil, nil, err
		}
		env.warnings = append(env.warnings, f.apply(&app)...)
	}

	app.HTTPAddr = env.str(EnvHTTPAddr, app.HTTPAddr)
	app.RequestTimeout = env.duration(EnvRequestTimeout, app.RequestTimeout)
	app.ShutdownTimeout = env.duration(EnvShutdownTimeout, app.ShutdownTimeout)
	app.MaxBodyBytes = env.integer(EnvMaxBodyBytes, app.MaxBodyBytes)

	app.EmailAlertAPI.URL = env.str(EnvEmailAlertAPIURL, app.EmailAlertAPI.URL)
	app.EmailAlertAPI.Timeout = env.duration(EnvEmailAlertAPITimeout, app.EmailAlertAPI.Timeout)
	app.EmailAlertAPIBearerToken = env.str(EnvEmailAlertAPIToken, "")
	app.ContentStore.URL = env.str(EnvContentStoreURL, app.ContentStore.URL)
	app.ContentStore.Timeout = env.duration(EnvContentStoreTimeout, app.ContentStore.Timeout)

	app.SubscriberAuthSecret = env.str(EnvSubscriberAuthSecret, "")
	app.LogLevel = strings.ToLower(env.str(EnvLogLevel, app.LogLevel))
	app.Locale = env.str(EnvLocale, app.Locale)
	app.Version = env.str(EnvVersion, app.Version)
	app.SwaggerEnabled = env.boolean(EnvSwaggerEnabled, app.SwaggerEnabled)

	return &app, env.warnings, nil
}

// envReader reads typed values and records a Warning for every value it
// could not parse. An unset or empty variable keeps the fallback silently.
type envReader struct {
	lookup   LookupFunc
	warnings []Warning
}

func (e *envReader) raw(key string) (string, bool) {
	v, ok := e.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *envReader) str(key, fallback string) string {
	if v, ok := e.raw(key); ok {
		return v
	}
	return fallback
}

func (e *envReader) duration(key string, fallback time.Duration) time.Duration {
	v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.warn(key, fmt.Sprintf("invalid duration %q, falling back to %v", v, fallback))
		return fallback
	}
	return d
}

func (e *envReader) integer(key string, fallback int64) int64 {
	v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.warn(key, fmt.Sprintf("invalid integer %q, falling back to %d", v, fallback))
		return fallback
	}
	return n
}

func (e *envReader) boolean(key string, fallback bool) bool {
	v, ok := e.raw(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.warn(key, fmt.Sprintf("invalid boolean %q, falling back to %t", v, fallback))
		return fallback
	}
	return b
}

func (e *envReader) warn(key, msg string) {
	e.warnings = append(e.warnings, Warning{Key: key, Message: msg})
}
