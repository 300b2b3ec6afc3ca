package auth

import "errors"

var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken indicates a token with a bad signature, algorithm or shape.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates a token without a future exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSubject indicates a token whose sub claim is not a subscriber id.
	ErrInvalidSubject = errors.New("invalid sub claim")
	// ErrWeakSecret is returned by ValidateSecret.
	ErrWeakSecret = errors.New("weak signing secret")
)
