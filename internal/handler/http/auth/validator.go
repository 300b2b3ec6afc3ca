package auth

import (
	"fmt"
	"strings"
)

// MinSecretLength is the shortest signing secret accepted at startup.
const MinSecretLength = 32

var weakSecretList = []string{
	"secret",
	"password",
	"changeme",
	"test",
	"default",
	"jwt",
	"admin",
	"123456",
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// ValidateSecret rejects signing secrets that are short, repetitive or built from
// well-known weak values. The returned error never contains the secret.
func ValidateSecret(secret string) error {
	if len(secret) < MinSecretLength {
		return fmt.Errorf("%w: must be at least %d characters (got %d)", ErrWeakSecret, MinSecretLength, len(secret))
	}
	if isRepeatedChar(secret) {
		return fmt.Errorf("%w: must not be a single repeated character", ErrWeakSecret)
	}

	lower := strings.ToLower(secret)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) || strings.Contains(lower, reverse(pattern)) {
			return fmt.Errorf("%w: must not contain a keyboard pattern", ErrWeakSecret)
		}
	}
	for _, weak := range weakSecretList {
		if strings.Trim(strings.ReplaceAll(lower, weak, ""), "-_0123456789") == "" {
			return fmt.Errorf("%w: must not be built from common weak values", ErrWeakSecret)
		}
	}
	return nil
}

func isRepeatedChar(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
