// Package respond writes JSON responses and error bodies for the HTTP handlers.
// Error bodies have the shape {"error": message, "code": outcome}; internal details
// never reach the client and are logged with subscriber data redacted.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// Outcome codes carried in error bodies.
const (
	CodeBadRequest    = "bad_request"
	CodeUnauthorized  = "unauthorized"
	CodeNotFound      = "not_found"
	CodeUnprocessable = "unprocessable"
	CodeUnavailable   = "service_unavailable"
	CodeInternal      = "internal_error"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", status),
				slog.Any("error", err))
		}
	}
}

// Error writes an error body with an explicit outcome code.
func Error(w http.ResponseWriter, status int, code, msg string) {
	JSON(w, status, ErrorBody{Error: msg, Code: code})
}

// CodeFor returns the default outcome code for an HTTP status.
func CodeFor(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusUnprocessableEntity:
		return CodeUnprocessable
	case status == http.StatusServiceUnavailable:
		return CodeUnavailable
	case status >= 500:
		return CodeInternal
	default:
		return CodeBadRequest
	}
}

var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
	"too long",
	"unsupported",
}

// SafeError writes err's message when it is a plain validation message and status
// is below 500. Everything else is logged and replaced by a generic message.
func SafeError(w http.ResponseWriter, status int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if status < 500 && isSafe(msg) {
		Error(w, status, CodeFor(status), msg)
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(status)),
		slog.Int("code", status),
		slog.String("error", SanitizeError(err)))
	Error(w, status, CodeFor(status), genericMessage(status))
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, fragment := range safeFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

func genericMessage(status int) string {
	if status == http.StatusServiceUnavailable {
		return "service temporarily unavailable"
	}
	if status >= 500 {
		return "internal server error"
	}
	return strings.ToLower(http.StatusText(status))
}

// AppError carries the status, outcome code and user-facing message chosen by a
// handler for a use case error.
type AppError struct {
	Status  int
	Code    string
	UserMsg string
	Err     error
	// Details is merged into the response body when set.
	Details any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError; an empty code is derived from status.
func NewAppError(status int, code, userMsg string, err error) *AppError {
	if code == "" {
		code = CodeFor(status)
	}
	return &AppError{Status: status, Code: code, UserMsg: userMsg, Err: err}
}

// Fail writes err. An *AppError in the chain decides the response; any other error
// becomes a 500 with a generic message.
func Fail(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		SafeError(w, http.StatusInternalServerError, err)
		return
	}

	if appErr.Err != nil && appErr.Status >= 500 {
		slog.Default().Error("application error",
			slog.String("status", http.StatusText(appErr.Status)),
			slog.Int("code", appErr.Status),
			slog.String("user_message", appErr.UserMsg),
			slog.String("error", SanitizeError(appErr.Err)))
	}

	if appErr.Details != nil {
		JSON(w, appErr.Status, struct {
			ErrorBody
			Details any `json:"details"`
		}{ErrorBody{Error: appErr.UserMsg, Code: appErr.Code}, appErr.Details})
		return
	}
	Error(w, appErr.Status, appErr.Code, appErr.UserMsg)
}
