package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
)

// Timeout returns middleware that answers 503 when a handler runs longer than d.
// The handler's context is canceled so in-flight upstream calls stop; writes it makes
// after the deadline are discarded. A non-positive d disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case p := <-panicked:
				panic(p)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					respond.Error(w, http.StatusServiceUnavailable, respond.CodeUnavailable, "request timed out")
				}
			}
		})
	}
}

// timeoutWriter gives the handler goroutine its own header map so that it never
// touches the real writer once the deadline has passed.
type timeoutWriter struct {
	w           http.ResponseWriter
	h           http.Header
	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (w *timeoutWriter) Header() http.Header { return w.h }

func (w *timeoutWriter) WriteHeader(status int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut || w.wroteHeader {
		return
	}
	w.writeHeaderLocked(status)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !w.wroteHeader {
		w.writeHeaderLocked(http.StatusOK)
	}
	return w.w.Write(b)
}

func (w *timeoutWriter) writeHeaderLocked(status int) {
	dst := w.w.Header()
	for k, vv := range w.h {
		dst[k] = vv
	}
	w.wroteHeader = true
	w.w.WriteHeader(status)
}
