package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "", FromContext(context.Background()))
	assert.Equal(t, "req-1", FromContext(WithRequestID(context.Background(), "req-1")))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantEcho bool
	}{
		{name: "no header generates uuid"},
		{name: "well-formed header is reused", inbound: "abc-123_x.y", wantEcho: true},
		{name: "header with spaces is replaced", inbound: "abc 123"},
		{name: "header with newline is replaced", inbound: "abc\nlevel=error"},
		{name: "overlong header is replaced", inbound: strings.Repeat("a", MaxLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/email/manage", nil)
			if tt.inbound != "" {
				req.Header.Set(Header, tt.inbound)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, seen, rr.Header().Get(Header))
			if tt.wantEcho {
				assert.Equal(t, tt.inbound, seen)
				return
			}
			_, err := uuid.Parse(seen)
			require.NoError(t, err, "expected a generated uuid, got %q", seen)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(strings.Repeat("a", MaxLength)))
	assert.False(t, Valid(""))
	assert.False(t, Valid("a/b"))
	assert.False(t, Valid("ünïcode"))
}
