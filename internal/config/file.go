package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the YAML configuration layout. Secrets are read from the
// environment only and have no file keys.
//
//	http:
//	  addr: ":8080"
//	  request_timeout: 10s
//	  shutdown_timeout: 15s
//	  max_body_bytes: 65536
//	email_alert_api:
//	  url: https://email-alert-api.example.com
//	  timeout: 5s
//	content_store:
//	  url: https://content-store.example.com
//	  timeout: 5s
//	log_level: info
//	locale: en
//	swagger_enabled: false
type File struct {
	HTTP struct {
		Addr            string `yaml:"addr"`
		RequestTimeout  string `yaml:"request_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64  `yaml:"max_body_bytes"`
	} `yaml:"http"`
	EmailAlertAPI  fileUpstream `yaml:"email_alert_api"`
	ContentStore   fileUpstream `yaml:"content_store"`
	LogLevel       string       `yaml:"log_level"`
	Locale         string       `yaml:"locale"`
	SwaggerEnabled *bool        `yaml:"swagger_enabled"`
}

type fileUpstream struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// ParseFile decodes a YAML configuration document. Unknown keys are rejected.
func ParseFile(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &f, nil
}

// readFile loads the YAML file at path. The path comes from the operator's
// environment, not from request input.
func readFile(path string) (*File, error) {
	// #nosec G304 -- path is operator-supplied configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseFile(bytes.NewReader(data))
}

// apply overlays the set fields of f onto app.
func (f *File) apply(app *App) []Warning {
	var warnings []Warning
	duration := func(key, raw string, dst *time.Duration) {
		if raw == "" {
			return
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			warnings = append(warnings, Warning{
				Key:     key,
				Message: fmt.Sprintf("invalid duration %q in config file, falling back to %v", raw, *dst),
			})
			return
		}
		*dst = d
	}
	str := func(src string, dst *string) {
		if src != "" {
			*dst = src
		}
	}

	str(f.HTTP.Addr, &app.HTTPAddr)
	duration("http.request_timeout", f.HTTP.RequestTimeout, &app.RequestTimeout)
	duration("http.shutdown_timeout", f.HTTP.ShutdownTimeout, &app.ShutdownTimeout)
	if f.HTTP.MaxBodyBytes != 0 {
		app.MaxBodyBytes = f.HTTP.MaxBodyBytes
	}

	str(f.EmailAlertAPI.URL, &app.EmailAlertAPI.URL)
	duration("email_alert_api.timeout", f.EmailAlertAPI.Timeout, &app.EmailAlertAPI.Timeout)
	str(f.ContentStore.URL, &app.ContentStore.URL)
	duration("content_store.timeout", f.ContentStore.Timeout, &app.ContentStore.Timeout)

	str(f.LogLevel, &app.LogLevel)
	str(f.Locale, &app.Locale)
	if f.SwaggerEnabled != nil {
		app.SwaggerEnabled = *f.SwaggerEnabled
	}
	return warnings
}
