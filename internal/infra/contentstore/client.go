// Package contentstore is the HTTP client for the content store, which returns the
// published content item for a base path.
//
// Lookups are idempotent reads: transient failures are retried with backoff and
// concurrent lookups of the same path share one upstream request. The shared
// request runs under its own deadline, so a caller that goes away stops waiting
// without failing the others.
package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/tracing"
	"github.com/Tubbz-alt/email-alert-frontend/internal/resilience/retry"
)

const (
	serviceName      = "content-store"
	maxResponseBytes = 4 << 20

	// DefaultTimeout applies when Config.Timeout is zero.
	DefaultTimeout = 5 * time.Second
)

// Config contains configuration for the content store client.
type Config struct {
	// BaseURL is the content store root, e.g. https://content-store.example.com
	BaseURL string

	// Timeout is the HTTP request timeout for a single attempt
	Timeout time.Duration

	// Retry configures retries of transient failures; zero value means ContentStoreConfig
	Retry retry.Config
}

// Client looks content items up in the content store.
// It implements repository.ContentStore.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      retry.Config
	budget     time.Duration
	group      singleflight.Group
}

// New creates a Client. The base URL must be absolute.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("content store base URL %q must be an absolute URL", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts <= 0 {
		retryCfg = retry.ContentStoreConfig()
	}

	return &Client{
		baseURL:    base.String(),
		httpClient: &http.Client{Timeout: timeout},
		retry:      retryCfg,
		budget:     lookupBudget(timeout, retryCfg),
	}, nil
}

// lookupBudget bounds one shared lookup: every attempt timing out plus every wait.
func lookupBudget(timeout time.Duration, cfg retry.Config) time.Duration {
	attempts := time.Duration(max(cfg.MaxAttempts, 1))
	return timeout*attempts + cfg.MaxDelay*(attempts-1)
}

// ContentItem returns the content item published at path.
// Returns an error matching entity.ErrNotFound when the content store has nothing there.
// A caller whose ctx ends gets its own context error; the shared lookup carries on
// for anyone else waiting on the same path.
func (c *Client) ContentItem(ctx context.Context, path string) (*entity.ContentItem, error) {
	ch := c.group.DoChan(path, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.budget)
		defer cancel()
		return c.fetch(fetchCtx, path)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		item := *res.Val.(*entity.ContentItem)
		return &item, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("content item %s: %w", path, ctx.Err())
	}
}

// Ping checks that the content store answers its readiness check.
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := tracing.StartClientSpan(ctx, serviceName, "healthcheck")
	code, err := c.get(ctx, "/healthcheck/ready", nil)
	tracing.EndClientSpan(span, code, err)
	return err
}

func (c *Client) fetch(ctx context.Context, path string) (*entity.ContentItem, error) {
	ctx, span := tracing.StartClientSpan(ctx, serviceName, "content_item")
	start := time.Now()

	var (
		item       entity.ContentItem
		statusCode int
	)
	policy := c.retry
	policy.OnRetry = func(int, error) {
		metrics.RecordUpstreamRetry(metrics.UpstreamContentStore, "content_item")
	}
	attempts, err := retry.Do(ctx, policy, func(ctx context.Context) error {
		item = entity.ContentItem{}
		code, err := c.get(ctx, "/api/content"+escapePath(path), &item)
		statusCode = code
		return err
	})
	span.SetAttributes(attribute.Int("retry.attempts", attempts))

	status := metrics.StatusOf(err)
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	metrics.RecordUpstreamCall(metrics.UpstreamContentStore, "content_item", status, time.Since(start))
	tracing.EndClientSpan(span, statusCode, err)

	if err != nil {
		return nil, fmt.Errorf("content item %s: %w", path, err)
	}
	return &item, nil
}

// get performs one GET and decodes a 2xx body into out.
func (c *Client) get(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	tracing.InjectHeaders(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &retry.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return resp.StatusCode, entity.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, &retry.StatusError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode content item: %w", err)
	}
	return resp.StatusCode, nil
}

// escapePath percent-encodes a base path for use in the content API URL.
func escapePath(path string) string {
	return (&url.URL{Path: path}).EscapedPath()
}
