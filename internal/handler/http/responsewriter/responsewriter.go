// Package responsewriter records what a handler wrote so that logging,
// metrics and tracing middleware can report it after the fact.
package responsewriter

import "net/http"

// ResponseWriter wraps an http.ResponseWriter and records the status code
// and body size.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

// Wrap returns w as a *ResponseWriter. Wrapping an already wrapped writer
// returns it unchanged, so stacked middleware share one set of counters.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and ignores later ones.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Flush sends buffered data when the underlying writer supports it.
func (w *ResponseWriter) Flush() {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is the status sent, or 200 when the handler wrote nothing.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten is the number of body bytes sent.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool { return w.written }

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
