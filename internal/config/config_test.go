package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/auth"
)

const testSecret = "k3Jv9pQz7LmX2rTb8WcY5nHd4GsF6aEe"

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func validEnv() map[string]string {
	return map[string]string{
		EnvEmailAlertAPIURL:     "https://email-alert-api.example.com",
		EnvEmailAlertAPIToken:   "api-token",
		EnvContentStoreURL:      "https://content-store.example.com",
		EnvSubscriberAuthSecret: testSecret,
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	app, warnings, err := LoadFrom(mapLookup(validEnv()))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, DefaultHTTPAddr, app.HTTPAddr)
	assert.Equal(t, DefaultRequestTimeout, app.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, app.ShutdownTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), app.MaxBodyBytes)
	assert.Equal(t, DefaultUpstreamTimeout, app.EmailAlertAPI.Timeout)
	assert.Equal(t, DefaultUpstreamTimeout, app.ContentStore.Timeout)
	assert.Equal(t, DefaultLogLevel, app.LogLevel)
	assert.Equal(t, DefaultLocale, app.Locale)
	assert.Equal(t, DefaultVersion, app.Version)
	assert.False(t, app.SwaggerEnabled)
	assert.NoError(t, app.Validate())
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	env := validEnv()
	env[EnvHTTPAddr] = ":9090"
	env[EnvRequestTimeout] = "20s"
	env[EnvShutdownTimeout] = "1m"
	env[EnvMaxBodyBytes] = "1024"
	env[EnvEmailAlertAPITimeout] = "3s"
	env[EnvContentStoreTimeout] = "2s"
	env[EnvLogLevel] = "DEBUG"
	env[EnvLocale] = "cy"
	env[EnvVersion] = "1.2.3"
	env[EnvSwaggerEnabled] = "true"

	app, warnings, err := LoadFrom(mapLookup(env))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, ":9090", app.HTTPAddr)
	assert.Equal(t, 20*time.Second, app.RequestTimeout)
	assert.Equal(t, time.Minute, app.ShutdownTimeout)
	assert.Equal(t, int64(1024), app.MaxBodyBytes)
	assert.Equal(t, 3*time.Second, app.EmailAlertAPI.Timeout)
	assert.Equal(t, 2*time.Second, app.ContentStore.Timeout)
	assert.Equal(t, "debug", app.LogLevel)
	assert.Equal(t, "cy", app.Locale)
	assert.Equal(t, "1.2.3", app.Version)
	assert.True(t, app.SwaggerEnabled)
	assert.Equal(t, "api-token", app.EmailAlertAPIBearerToken)
	assert.Equal(t, testSecret, app.SubscriberAuthSecret)
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	env := validEnv()
	env[EnvRequestTimeout] = "soon"
	env[EnvMaxBodyBytes] = "lots"
	env[EnvSwaggerEnabled] = "maybe"

	app, warnings, err := LoadFrom(mapLookup(env))
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, app.RequestTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), app.MaxBodyBytes)
	assert.False(t, app.SwaggerEnabled)

	require.Len(t, warnings, 3)
	keys := []string{warnings[0].Key, warnings[1].Key, warnings[2].Key}
	assert.ElementsMatch(t, []string{EnvRequestTimeout, EnvMaxBodyBytes, EnvSwaggerEnabled}, keys)
	assert.Contains(t, warnings[0].String(), "falling back")
}

func TestLoadFrom_BlankValuesKeepDefaults(t *testing.T) {
	env := validEnv()
	env[EnvHTTPAddr] = "   "
	env[EnvRequestTimeout] = ""

	app, warnings, err := LoadFrom(mapLookup(env))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, DefaultHTTPAddr, app.HTTPAddr)
	assert.Equal(t, DefaultRequestTimeout, app.RequestTimeout)
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	for k, v := range validEnv() {
		t.Setenv(k, v)
	}
	t.Setenv(EnvHTTPAddr, ":7070")
	t.Setenv(EnvConfigFile, "")

	app, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", app.HTTPAddr)
	assert.Equal(t, "https://content-store.example.com", app.ContentStore.URL)
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := `http:
  addr: ":8181"
  request_timeout: 30s
  max_body_bytes: 2048
email_alert_api:
  url: https://file-email-alert-api.example.com
  timeout: 7s
content_store:
  url: https://file-content-store.example.com
  timeout: not-a-duration
log_level: warn
swagger_enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	env := validEnv()
	delete(env, EnvEmailAlertAPIURL)
	env[EnvConfigFile] = path
	env[EnvRequestTimeout] = "15s"

	app, warnings, err := LoadFrom(mapLookup(env))
	require.NoError(t, err)

	assert.Equal(t, ":8181", app.HTTPAddr)
	assert.Equal(t, 15*time.Second, app.RequestTimeout, "environment wins over the file")
	assert.Equal(t, int64(2048), app.MaxBodyBytes)
	assert.Equal(t, "https://file-email-alert-api.example.com", app.EmailAlertAPI.URL)
	assert.Equal(t, 7*time.Second, app.EmailAlertAPI.Timeout)
	assert.Equal(t, "https://content-store.example.com", app.ContentStore.URL)
	assert.Equal(t, DefaultUpstreamTimeout, app.ContentStore.Timeout)
	assert.Equal(t, "warn", app.LogLevel)
	assert.True(t, app.SwaggerEnabled)

	require.Len(t, warnings, 1)
	assert.Equal(t, "content_store.timeout", warnings[0].Key)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	env := validEnv()
	env[EnvConfigFile] = filepath.Join(t.TempDir(), "absent.yml")

	_, _, err := LoadFrom(mapLookup(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "empty document", doc: ""},
		{name: "known keys", doc: "locale: cy\nhttp:\n  addr: \":1\"\n"},
		{name: "unknown key", doc: "bearer_token: abc\n", wantErr: true},
		{name: "malformed yaml", doc: "http: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(strings.NewReader(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApp_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*App)
		wantErr string
	}{
		{name: "valid", mutate: func(*App) {}},
		{
			name:    "missing email alert api url",
			mutate:  func(a *App) { a.EmailAlertAPI.URL = "" },
			wantErr: EnvEmailAlertAPIURL + " is required",
		},
		{
			name:    "relative content store url",
			mutate:  func(a *App) { a.ContentStore.URL = "/content" },
			wantErr: EnvContentStoreURL + " must use http or https",
		},
		{
			name:    "url without host",
			mutate:  func(a *App) { a.ContentStore.URL = "https://" },
			wantErr: EnvContentStoreURL + " must include a host",
		},
		{
			name:    "missing bearer token",
			mutate:  func(a *App) { a.EmailAlertAPIBearerToken = "" },
			wantErr: EnvEmailAlertAPIToken + " is required",
		},
		{
			name:    "weak secret",
			mutate:  func(a *App) { a.SubscriberAuthSecret = "short" },
			wantErr: EnvSubscriberAuthSecret,
		},
		{
			name:    "request timeout too long",
			mutate:  func(a *App) { a.RequestTimeout = time.Hour },
			wantErr: EnvRequestTimeout,
		},
		{
			name:    "zero upstream timeout",
			mutate:  func(a *App) { a.ContentStore.Timeout = 0 },
			wantErr: EnvContentStoreTimeout,
		},
		{
			name:    "negative body limit",
			mutate:  func(a *App) { a.MaxBodyBytes = -1 },
			wantErr: EnvMaxBodyBytes,
		},
		{
			name:    "blank address",
			mutate:  func(a *App) { a.HTTPAddr = " " },
			wantErr: "HTTP_ADDR is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, err := LoadFrom(mapLookup(validEnv()))
			require.NoError(t, err)
			tt.mutate(app)

			err = app.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApp_Validate_ReportsEveryProblem(t *testing.T) {
	app := Defaults()

	err := app.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvEmailAlertAPIURL)
	assert.Contains(t, err.Error(), EnvContentStoreURL)
	assert.Contains(t, err.Error(), EnvEmailAlertAPIToken)
	assert.ErrorIs(t, err, auth.ErrWeakSecret)
}

func TestRecordLoad(t *testing.T) {
	RecordLoad([]Warning{{Key: "TEST_RECORD_LOAD", Message: "bad"}})
	assert.Equal(t, float64(1), testutil.ToFloat64(fallbackActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(fallbacksTotal.WithLabelValues("TEST_RECORD_LOAD")))

	RecordLoad(nil)
	assert.Equal(t, float64(0), testutil.ToFloat64(fallbackActive))
	assert.Greater(t, testutil.ToFloat64(loadTimestamp), float64(0))
}
