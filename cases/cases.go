// Package cases models learner cases: the unit of handover between
// institutions, with notes, history and a transfer workflow status.
package cases

import (
	"strings"
	"time"
)

// Status tracks a case through the handover workflow
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingTransfer Status = "pending_transfer"
	StatusInReview        Status = "in_review"
	StatusTransferred     Status = "transferred"
	StatusClosed          Status = "closed"
)

// Statuses lists every case status in workflow order.
var Statuses = []Status{
	StatusDraft,
	StatusPendingTransfer,
	StatusInReview,
	StatusTransferred,
	StatusClosed,
}

// Note is a dated annotation on a case. Confidential notes are only shown to
// the authoring institution.
type Note struct {
	ID             string    `json:"id"`
	CaseID         string    `json:"caseId"`
	AuthorID       string    `json:"authorId"`
	AuthorName     string    `json:"authorName"`
	Content        string    `json:"content"`
	IsConfidential bool      `json:"isConfidential"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// HistoryEntry records an action taken on a case by an institution.
type HistoryEntry struct {
	ID              string    `json:"id"`
	CaseID          string    `json:"caseId"`
	InstitutionID   string    `json:"institutionId"`
	InstitutionName string    `json:"institutionName"`
	Action          string    `json:"action"`
	PerformedBy     string    `json:"performedBy"`
	Timestamp       time.Time `json:"timestamp"`
}

type LearnerCase struct {
	ID                   string         `json:"id"`
	ReferenceNumber      string         `json:"referenceNumber"`
	LearnerInitials      string         `json:"learnerInitials"` // Initials only, no learner PII in this record
	DateOfBirth          time.Time      `json:"dateOfBirth"`
	AgeAtReferral        int            `json:"ageAtReferral"`
	CurrentInstitutionID string         `json:"currentInstitutionId"`
	TargetInstitutionID  string         `json:"targetInstitutionId,omitempty"`
	Status               Status         `json:"status"`
	SupportNeeds         []string       `json:"supportNeeds"`
	Notes                []Note         `json:"caseNotes"`
	History              []HistoryEntry `json:"history"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// SortOrder selects the list ordering
type SortOrder string

const (
	SortByUpdated   SortOrder = "updated"   // Most recently updated first (default)
	SortByCreated   SortOrder = "created"   // Most recently created first
	SortByReference SortOrder = "reference" // Reference number, ascending
)

// Filter narrows a case listing. Zero values mean "no filter".
type Filter struct {
	Query  string
	Status Status
	SortBy SortOrder
}

// Matches reports whether the case passes the query and status filters. The
// query is a case-insensitive substring match on the reference number, the
// learner initials or any support need.
func (f Filter) Matches(c *LearnerCase) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(c.ReferenceNumber), q) ||
		strings.Contains(strings.ToLower(c.LearnerInitials), q) {
		return true
	}
	for _, need := range c.SupportNeeds {
		if strings.Contains(strings.ToLower(need), q) {
			return true
		}
	}
	return false
}
