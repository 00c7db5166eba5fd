// Package messaging models institution-to-institution message threads.
package messaging

import (
	"strings"
	"time"
)

// Thread groups messages between two institutions, optionally linked to a
// learner case.
type Thread struct {
	ID                        string    `json:"id"`
	ParticipantInstitutionIDs []string  `json:"participantInstitutionIds"`
	ParticipantNames          []string  `json:"participantNames"`
	Subject                   string    `json:"subject"`
	LinkedCaseID              string    `json:"linkedCaseId,omitempty"`
	LastMessageAt             time.Time `json:"lastMessageAt"`
	UnreadCount               int       `json:"unreadCount"`
	CreatedAt                 time.Time `json:"createdAt"`
}

type Message struct {
	ID                  string    `json:"id"`
	ThreadID            string    `json:"threadId"`
	SenderID            string    `json:"senderId"`
	SenderName          string    `json:"senderName"`
	SenderInstitutionID string    `json:"senderInstitutionId"`
	Content             string    `json:"content"`
	LinkedCaseID        string    `json:"linkedCaseId,omitempty"`
	IsRead              bool      `json:"isRead"`
	CreatedAt           time.Time `json:"createdAt"`
}

// MatchesQuery reports whether the thread matches a case-insensitive
// substring search over its subject and participant names.
func (t *Thread) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Subject), q) {
		return true
	}
	for _, name := range t.ParticipantNames {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}
