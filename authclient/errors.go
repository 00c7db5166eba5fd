package authclient

import (
	"fmt"
	"net/http"
)

// CodeInviteRequired is attached by the login endpoint when the account has
// not been activated on the invite-only platform.
const CodeInviteRequired = "INVITE_REQUIRED"

// APIError is a non-2xx response from the auth API. Code carries the body's
// machine-readable code when the endpoint supplied one; it is empty when the
// body was absent or unparseable.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("auth api responded %d (%s)", e.Status, e.Code)
	}
	return fmt.Sprintf("auth api responded %d", e.Status)
}

// InviteRequired reports whether the failure is the invite-only gate.
func (e *APIError) InviteRequired() bool {
	return e.Status == http.StatusForbidden && e.Code == CodeInviteRequired
}

// Unauthorized reports whether the endpoint rejected the credentials.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}
