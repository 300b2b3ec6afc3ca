// Package auth gates the subscription management routes behind a subscriber identity.
//
// A request is authenticated by an HS256 JWT in the Authorization header whose "sub"
// claim is the subscriber id known to the email alert API. Tokens are minted by the
// account flow that verifies the subscriber's address; this package only checks them.
package auth
