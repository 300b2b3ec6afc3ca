package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	// Subscription frequency routes carry an opaque subscription id
	{Pattern: regexp.MustCompile(`^/email/manage/frequency/[^/]+/change$`), Template: "/email/manage/frequency/:id/change"},
	{Pattern: regexp.MustCompile(`^/email/manage/frequency/[^/]+$`), Template: "/email/manage/frequency/:id"},

	// API documentation assets
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with subscription ids (e.g., /email/manage/frequency/abc-123) to
// template format (e.g., /email/manage/frequency/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/email/manage/frequency/abc-123")         // "/email/manage/frequency/:id"
//	NormalizePath("/email/manage/frequency/abc-123/change")  // "/email/manage/frequency/:id/change"
//	NormalizePath("/email/manage")                           // "/email/manage" (unchanged)
//	NormalizePath("/email-signup")                           // "/email-signup" (unchanged)
//	NormalizePath("/swagger/index.html")                     // "/swagger/*"
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/email-signup?link=/foo")                 // "/email-signup"
//	NormalizePath("/email/manage/")                          // "/email/manage"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization. This is useful for capacity planning and monitoring.
//
// Expected cardinality calculation:
//   - Static endpoints: signup (3), management (5), operations (5)
//   - Template endpoints: one per pattern
func GetExpectedCardinality() int {
	templateCount := len(pathPatterns)
	staticCount := 13
	return templateCount + staticCount
}
