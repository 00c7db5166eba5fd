package server

import (
	"net/http"
	"net/url"

	"github.com/neurobridge/dashboard/users"
)

// SessionState is the auth state exposed to the local UI.
type SessionState struct {
	User            *users.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsLoading       bool        `json:"isLoading"`
	Error           string      `json:"error,omitempty"`
}

// LoginEntryHandler is the login entry point unauthenticated navigation is
// redirected to. It reports the current auth state plus any error carried
// over from a failed submission.
func (s *Server) LoginEntryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.sessionState()
		if msg := r.URL.Query().Get("error"); msg != "" {
			state.Error = msg
		}
		s.writeJSON(w, http.StatusOK, state)
	}
}

// LoginSubmissionHandler processes the login form submission (POST /auth/login)
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		if err := s.auth.Login(r.Context(), email, password); err != nil {
			// Error display is state-driven: the recorded message travels
			// back to the login entry point, the cause stays server-side
			redirect := RouteAuthLogin + "?error=" + url.QueryEscape(s.auth.LastError())
			if email != "" {
				redirect += "&email=" + url.QueryEscape(email)
			}
			http.Redirect(w, r, redirect, http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
	}
}

// LogoutHandler clears the session and returns to the landing page. No
// network call is involved; logging out is purely local state.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.auth.Logout()
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// SessionStateHandler reports the current auth state (GET /auth/session)
func (s *Server) SessionStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, s.sessionState())
	}
}

func (s *Server) sessionState() SessionState {
	user := s.auth.CurrentUser()
	return SessionState{
		User:            user,
		IsAuthenticated: user != nil,
		IsLoading:       s.auth.IsLoading(),
		Error:           s.auth.LastError(),
	}
}
