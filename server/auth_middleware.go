package server

import (
	"net/http"

	"github.com/neurobridge/dashboard/users"
)

// RequireSession gates a route on the session manager's state.
//
// With no roles, any authenticated user passes. With roles, an authenticated
// user outside the allow-list is sent to the dashboard landing page rather
// than the login page - they are signed in, just not authorized for this
// view. The check is advisory for the local UI; the remote API enforces
// authorization on every request it serves.
func (s *Server) RequireSession(allowedRoles ...users.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// A login exchange is in flight; tell the client to come back
			if s.auth.IsLoading() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, `{"error":"signing_in"}`, http.StatusServiceUnavailable)
				return
			}

			user := s.auth.CurrentUser()
			if user == nil {
				http.Redirect(w, r, RouteAuthLogin, http.StatusSeeOther)
				return
			}

			if len(allowedRoles) > 0 && !user.HasRole(allowedRoles...) {
				http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
				return
			}

			next(w, r)
		}
	}
}
