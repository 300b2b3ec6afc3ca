package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// maxPathLength defines the maximum allowed length for content paths.
const maxPathLength = 2048

// ValidateContentPath checks that path is a relative content store base path.
// Absolute URLs, scheme-relative URLs and paths that do not start with a slash are
// rejected so that a lookup can never be pointed at another host.
func ValidateContentPath(path string) error {
	if path == "" {
		return &ValidationError{Field: "link", Message: "is required"}
	}

	if len(path) > maxPathLength {
		return &ValidationError{
			Field:   "link",
			Message: fmt.Sprintf("must not exceed %d characters", maxPathLength),
		}
	}

	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return &ValidationError{Field: "link", Message: "must be a path starting with /"}
	}

	parsed, err := url.Parse(path)
	if err != nil {
		return &ValidationError{Field: "link", Message: "must be a valid path"}
	}
	if parsed.IsAbs() || parsed.Host != "" {
		return &ValidationError{Field: "link", Message: "must be a relative path"}
	}

	return nil
}
