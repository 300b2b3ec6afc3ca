// Package signup provides the use cases behind subscribing to an arbitrary content item.
// It resolves a content item to the parameters of its subscriber list, follows redirect
// items, and asks the email alert API to find or create the list.
package signup

import (
	"errors"
	"fmt"
)

// Sentinel errors for signup use case operations.
var (
	// ErrUnsupportedContentItem indicates that the content item's document type has no
	// subscriber list. It is a client error: the request asked for something unsupported.
	ErrUnsupportedContentItem = errors.New("unsupported content item")

	// ErrInvalidPath indicates that the requested content path is not a relative path.
	ErrInvalidPath = errors.New("invalid content item path")

	// ErrContentItemNotFound indicates that the content store has no item for the path,
	// or that a redirect item has nowhere to redirect to.
	ErrContentItemNotFound = errors.New("content item not found")
)

// RedirectError instructs the caller to resolve Destination instead of the requested path.
type RedirectError struct {
	Destination string
}

// Error implements the error interface.
func (e *RedirectError) Error() string {
	return fmt.Sprintf("content item redirects to %s", e.Destination)
}
