package respond

import "github.com/Tubbz-alt/email-alert-frontend/internal/observability/logging"

// SanitizeError returns err's message with subscriber addresses and credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return logging.Redact(err.Error())
}
