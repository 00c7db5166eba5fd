package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/neurobridge/dashboard/audit"
	"github.com/neurobridge/dashboard/cases"
	"github.com/neurobridge/dashboard/institutions"
	"github.com/neurobridge/dashboard/messaging"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

// IndexHandler is the public landing route
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"app":             s.config.AppName,
			"isAuthenticated": s.auth.IsAuthenticated(),
		})
	}
}

// DashboardHandler reports the stats summary for the landing view
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		directory, err := s.repos.Institutions.Search(institutions.SearchFilters{})
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}
		caseCounts, err := s.repos.Cases.CountByStatus()
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}
		threads, err := s.repos.Threads.SearchThreads("")
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}

		unread := 0
		for _, t := range threads {
			unread += t.UnreadCount
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"user":           s.auth.CurrentUser(),
			"institutions":   len(directory),
			"casesByStatus":  caseCounts,
			"activeThreads":  len(threads),
			"unreadMessages": unread,
		})
	}
}

// InstitutionSearchHandler runs a directory search (GET /institutions)
func (s *Server) InstitutionSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filters := institutions.SearchFilters{
			Query:              q.Get("q"),
			Type:               institutions.Type(q.Get("type")),
			Province:           q.Get("province"),
			SupportNeeds:       q["need"],
			VerificationStatus: institutions.VerificationStatus(q.Get("status")),
		}
		if v := q.Get("ageMin"); v != "" {
			filters.AgeRangeMin, _ = strconv.Atoi(v)
		}
		if v := q.Get("ageMax"); v != "" {
			filters.AgeRangeMax, _ = strconv.Atoi(v)
		}

		results, err := s.repos.Institutions.Search(filters)
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"institutions": results,
			"total":        len(results),
		})
	}
}

// CaseListHandler lists learner cases (GET /cases)
func (s *Server) CaseListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := cases.Filter{
			Query:  q.Get("q"),
			Status: cases.Status(q.Get("status")),
			SortBy: cases.SortOrder(q.Get("sort")),
		}

		list, err := s.repos.Cases.List(filter)
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}
		counts, err := s.repos.Cases.CountByStatus()
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"cases":          list,
			"countsByStatus": counts,
		})
	}
}

// ThreadListHandler lists message threads, newest activity first (GET /messages)
func (s *Server) ThreadListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threads, err := s.repos.Threads.SearchThreads(r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"threads": threads})
	}
}

// ThreadDetailHandler returns a thread with its messages and marks it read
func (s *Server) ThreadDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threadID := r.PathValue("threadID")

		thread, err := s.repos.Threads.GetThread(threadID)
		if err != nil {
			http.Error(w, `{"error":"thread_not_found"}`, http.StatusNotFound)
			return
		}
		msgs, err := s.repos.Threads.MessagesForThread(threadID)
		if err != nil {
			http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
			return
		}

		// Opening a thread clears its unread state
		if err := s.repos.Threads.MarkThreadRead(threadID); err != nil {
			log.Warn().Err(err).Str("thread", threadID).Msg("failed to mark thread read")
		}
		thread.UnreadCount = 0

		s.writeJSON(w, http.StatusOK, map[string]any{
			"thread":   thread,
			"messages": msgs,
		})
	}
}

type postMessageRequest struct {
	Content      string `json:"content"`
	LinkedCaseID string `json:"linkedCaseId"`
}

// PostMessageHandler appends a message to a thread (POST /messages/{threadID})
func (s *Server) PostMessageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threadID := r.PathValue("threadID")

		var req postMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			http.Error(w, `{"error":"invalid_message"}`, http.StatusBadRequest)
			return
		}

		user := s.auth.CurrentUser() // Guard guarantees a user here
		msg := &messaging.Message{
			ThreadID:            threadID,
			SenderID:            user.ID,
			SenderName:          user.Name,
			SenderInstitutionID: user.InstitutionID,
			Content:             req.Content,
			LinkedCaseID:        req.LinkedCaseID,
			IsRead:              true,
		}
		if err := s.repos.Threads.PostMessage(msg); err != nil {
			http.Error(w, `{"error":"thread_not_found"}`, http.StatusNotFound)
			return
		}

		if s.trail != nil {
			s.trail.Append(audit.Entry{
				UserID:       user.ID,
				UserName:     user.Name,
				Action:       "message.post",
				ResourceType: "thread",
				ResourceID:   threadID,
			})
		}

		s.writeJSON(w, http.StatusCreated, msg)
	}
}

// AuditTrailHandler returns the audit trail, newest first (GET /admin/audit)
func (s *Server) AuditTrailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := []audit.Entry{}
		if s.trail != nil {
			entries = s.trail.Entries()
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
	}
}
