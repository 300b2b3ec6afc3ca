package emailalertapi

import (
	"fmt"
)

// maxErrorBodyLength bounds how much of an upstream error body is kept in errors.
const maxErrorBodyLength = 512

// ClientError represents a 4xx answer from the email alert API.
// It unwraps to entity.ErrNotFound for 404 and entity.ErrUnprocessable for 422.
type ClientError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("email alert API client error %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the entity sentinel matching the status code, if any.
func (e *ClientError) Unwrap() error {
	return e.kind
}

// ServerError represents a 5xx (or otherwise unexpected) answer from the email alert API.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("email alert API server error %d: %s", e.StatusCode, e.Message)
}

// truncate shortens text to maxLength bytes, appending "..." when cut.
func truncate(text string, maxLength int) string {
	const suffix = "..."
	if len(text) <= maxLength {
		return text
	}
	cut := maxLength - len(suffix)
	if cut < 0 {
		cut = 0
	}
	return text[:cut] + suffix
}
