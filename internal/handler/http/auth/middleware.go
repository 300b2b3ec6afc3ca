package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
)

type ctxKey string

const ctxSubscriber ctxKey = "subscriber_id"

// SubscriberIDFromContext returns the authenticated subscriber id, if any.
func SubscriberIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxSubscriber).(string)
	return id, ok && id != ""
}

// WithSubscriberID stores an authenticated subscriber id in ctx.
func WithSubscriberID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxSubscriber, id)
}

// RequireSubscriber returns middleware that rejects requests without a valid
// subscriber token with 401 and otherwise places the subscriber id in the context.
func RequireSubscriber(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id, err := ParseSubscriber(r.Header.Get("Authorization"), secret)
			RecordAuthDuration(time.Since(start))
			if err != nil {
				RecordAuthRequest(resultFor(err))
				slog.DebugContext(r.Context(), "subscriber authentication failed", slog.Any("error", err))
				w.Header().Set("WWW-Authenticate", `Bearer realm="email-manage"`)
				respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "authentication required")
				return
			}
			RecordAuthRequest(resultSuccess)
			next.ServeHTTP(w, r.WithContext(WithSubscriberID(r.Context(), id)))
		})
	}
}

// ParseSubscriber validates an Authorization header value and returns the subscriber id.
func ParseSubscriber(authz string, secret []byte) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", ErrMissingToken
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
	if raw == "" {
		return "", ErrMissingToken
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	return subject(claims["sub"])
}

// subject accepts string and integer sub claims; the email alert API uses both.
func subject(v any) (string, error) {
	switch sub := v.(type) {
	case string:
		if s := strings.TrimSpace(sub); s != "" {
			return s, nil
		}
	case json.Number:
		if n, err := sub.Int64(); err == nil && n > 0 {
			return strconv.FormatInt(n, 10), nil
		}
	}
	return "", ErrInvalidSubject
}

func resultFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return resultMissing
	case errors.Is(err, ErrTokenExpired):
		return resultExpired
	default:
		return resultInvalid
	}
}
