package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// maxIDLength bounds opaque identifiers taken from URL paths.
const maxIDLength = 128

// ValidateID checks an opaque identifier taken from a path segment,
// such as the value of r.PathValue("id").
//
// Returns:
//   - string: The identifier with surrounding whitespace removed
//   - error: ErrInvalidID if the identifier is empty, too long, or contains
//     a slash or control character
//
// Example:
//
//	id, err := ValidateID(r.PathValue("id"))
func ValidateID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxIDLength {
		return "", ErrInvalidID
	}
	for _, c := range id {
		if c == '/' || c < 0x20 || c == 0x7f {
			return "", ErrInvalidID
		}
	}
	return id, nil
}
