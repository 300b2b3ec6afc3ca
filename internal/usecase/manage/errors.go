// Package manage provides the subscription management use cases for an authenticated
// subscriber: listing subscriptions, changing a subscription's frequency, changing the
// subscriber's address and unsubscribing from everything.
package manage

import (
	"errors"
	"fmt"
)

// Sentinel errors for subscription management operations.
var (
	// ErrNotFound indicates that the subscription is absent from the subscriber's own
	// subscriptions. A subscription owned by somebody else is reported the same way.
	ErrNotFound = errors.New("subscription not found")

	// ErrInvalidFrequency indicates that the email alert API rejected the frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrMissingAddress indicates that the new address was empty or blank.
	ErrMissingAddress = errors.New("missing address")

	// ErrInvalidAddress indicates that the email alert API rejected the new address.
	ErrInvalidAddress = errors.New("invalid address")
)

// AddressError carries what the address-change form needs to be presented again:
// the value the subscriber attempted and the address still on record.
type AddressError struct {
	// Err is ErrMissingAddress or ErrInvalidAddress.
	Err       error
	Attempted string
	Current   string
	// Message is the localized explanation shown next to the form.
	Message string
}

// Error implements the error interface.
func (e *AddressError) Error() string {
	return fmt.Sprintf("change address: %v", e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *AddressError) Unwrap() error {
	return e.Err
}
