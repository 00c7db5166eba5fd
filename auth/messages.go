package auth

import (
	"errors"

	"github.com/neurobridge/dashboard/authclient"
)

// User-facing messages for login failures.
const (
	MsgInviteRequired     = "This platform is invite-only. Your account has not been activated yet."
	MsgInvalidCredentials = "Invalid email or password."
	MsgTryAgain           = "Something went wrong. Please try again later."
)

// FailureMessage maps a login failure to its user-facing message. Precedence:
// the invite-only gate (403 + INVITE_REQUIRED), then a credentials rejection
// (401 with any code), then the generic fallback for everything else -
// transport errors, server errors, malformed responses.
func FailureMessage(err error) string {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.InviteRequired():
			return MsgInviteRequired
		case apiErr.Unauthorized():
			return MsgInvalidCredentials
		}
	}
	return MsgTryAgain
}
