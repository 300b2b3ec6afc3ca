// Package emailalertapi is the HTTP client for the email alert API, the external
// service that stores subscriber lists, subscribers and subscriptions.
//
// Every call goes through a circuit breaker and is attempted exactly once.
// Not-found and unprocessable answers are reported as entity.ErrNotFound and
// entity.ErrUnprocessable and do not count against the breaker; an open breaker
// fails fast with entity.ErrServiceUnavailable.
package emailalertapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/tracing"
	"github.com/Tubbz-alt/email-alert-frontend/internal/resilience/circuitbreaker"
)

const (
	// serviceName labels spans and metrics for this upstream.
	serviceName = "email-alert-api"

	// maxResponseBytes bounds the size of a decoded response body.
	maxResponseBytes = 1 << 20

	// DefaultTimeout applies when Config.Timeout is zero.
	DefaultTimeout = 10 * time.Second
)

// Config contains configuration for the email alert API client.
type Config struct {
	// BaseURL is the API root, e.g. https://email-alert-api.example.com
	BaseURL string

	// BearerToken authenticates every request
	BearerToken string

	// Timeout is the HTTP request timeout for a single call
	Timeout time.Duration

	// Breaker configures the circuit breaker; zero value means EmailAlertAPIConfig
	Breaker circuitbreaker.Config
}

// Client talks to the email alert API.
// It implements repository.NotificationService.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// New creates a Client. The base URL must be absolute.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("email alert API base URL %q must be an absolute URL", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	breakerCfg := cfg.Breaker
	if breakerCfg.Name == "" {
		breakerCfg = circuitbreaker.EmailAlertAPIConfig()
	}
	breakerCfg.IsSuccessful = isBreakerSuccess

	return &Client{
		baseURL:    base.String(),
		token:      cfg.BearerToken,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    circuitbreaker.New(breakerCfg),
	}, nil
}

// isBreakerSuccess keeps client-addressable answers from tripping the breaker.
func isBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrUnprocessable)
}

// FindOrCreateSubscriberList returns the slug of the subscriber list matching params,
// creating the list when it does not exist yet.
func (c *Client) FindOrCreateSubscriberList(ctx context.Context, params entity.SubscriberListParams) (entity.SubscriberListRef, error) {
	var out subscriberListResponse
	if err := c.do(ctx, "find_or_create_subscriber_list", http.MethodPost, "/subscriber-lists", toListRequest(params), &out); err != nil {
		return entity.SubscriberListRef{}, err
	}
	return entity.SubscriberListRef{Slug: out.SubscriberList.Slug}, nil
}

// GetSubscriptions returns the subscriber and their active subscriptions.
func (c *Client) GetSubscriptions(ctx context.Context, subscriberID string) (entity.SubscriberSubscriptions, error) {
	var out subscriptionsResponse
	path := "/subscribers/" + url.PathEscape(subscriberID) + "/subscriptions"
	if err := c.do(ctx, "get_subscriptions", http.MethodGet, path, nil, &out); err != nil {
		return entity.SubscriberSubscriptions{}, err
	}
	return out.toEntity(), nil
}

// ChangeSubscription sets the frequency of a subscription.
func (c *Client) ChangeSubscription(ctx context.Context, subscriptionID string, frequency entity.Frequency) error {
	path := "/subscriptions/" + url.PathEscape(subscriptionID)
	return c.do(ctx, "change_subscription", http.MethodPatch, path, changeSubscriptionRequest{Frequency: string(frequency)}, nil)
}

// ChangeSubscriber sets the address of a subscriber.
func (c *Client) ChangeSubscriber(ctx context.Context, subscriberID, newAddress string) error {
	path := "/subscribers/" + url.PathEscape(subscriberID)
	return c.do(ctx, "change_subscriber", http.MethodPatch, path, changeSubscriberRequest{NewAddress: newAddress}, nil)
}

// UnsubscribeSubscriber ends every subscription of a subscriber.
func (c *Client) UnsubscribeSubscriber(ctx context.Context, subscriberID string) error {
	path := "/subscribers/" + url.PathEscape(subscriberID)
	return c.do(ctx, "unsubscribe_subscriber", http.MethodDelete, path, nil, nil)
}

// Ping checks that the email alert API answers its readiness check.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "healthcheck", http.MethodGet, "/healthcheck/ready", nil, nil)
}

// BreakerOpen reports whether the circuit breaker is currently rejecting calls.
func (c *Client) BreakerOpen() bool {
	return c.breaker.IsOpen()
}

// do sends one request through the circuit breaker and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	ctx, span := tracing.StartClientSpan(ctx, serviceName, operation)
	start := time.Now()
	statusCode := 0

	_, err := c.breaker.Execute(func() (interface{}, error) {
		code, err := c.send(ctx, method, path, body, out)
		statusCode = code
		return nil, err
	})
	if circuitbreaker.IsRejection(err) {
		err = fmt.Errorf("%s %s: %w: %w", method, path, entity.ErrServiceUnavailable, err)
	}

	metrics.RecordUpstreamCall(metrics.UpstreamEmailAlertAPI, operation, upstreamStatus(statusCode, err), time.Since(start))
	tracing.EndClientSpan(span, statusCode, err)
	return err
}

// send performs the HTTP exchange and returns the status code it received.
func (c *Client) send(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	tracing.InjectHeaders(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out != nil && len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
			}
		}
		return resp.StatusCode, nil
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, &ClientError{StatusCode: resp.StatusCode, Message: truncate(string(data), maxErrorBodyLength), kind: entity.ErrNotFound}
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return resp.StatusCode, &ClientError{StatusCode: resp.StatusCode, Message: truncate(string(data), maxErrorBodyLength), kind: entity.ErrUnprocessable}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return resp.StatusCode, &ClientError{StatusCode: resp.StatusCode, Message: truncate(string(data), maxErrorBodyLength)}
	default:
		return resp.StatusCode, &ServerError{StatusCode: resp.StatusCode, Message: truncate(string(data), maxErrorBodyLength)}
	}
}

// upstreamStatus is the metrics label for a finished call.
func upstreamStatus(statusCode int, err error) string {
	if statusCode > 0 {
		return strconv.Itoa(statusCode)
	}
	if circuitbreaker.IsRejection(err) {
		return "circuit_open"
	}
	return metrics.StatusOf(err)
}
