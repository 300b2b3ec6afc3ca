package logging

import "regexp"

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-._~+/]+=*`)
	jwtPattern    = regexp.MustCompile(`eyJ[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+`)
	dsnPattern    = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// Redact masks subscriber email addresses, bearer credentials, JWTs and URL
// passwords in s.
func Redact(s string) string {
	s = bearerPattern.ReplaceAllString(s, "Bearer ****")
	s = jwtPattern.ReplaceAllString(s, "****")
	s = dsnPattern.ReplaceAllString(s, "://$1:****@")
	return emailPattern.ReplaceAllStringFunc(s, maskEmail)
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(addr string) string {
	for i := 0; i < len(addr); i++ {
		if addr[i] == '@' {
			return addr[:1] + "***" + addr[i:]
		}
	}
	return "****"
}
