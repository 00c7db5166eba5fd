// Package institutions models the directory of schools and tutoring centres
// and the search filters used to discover them.
package institutions

import (
	"strings"
	"time"
)

// Type classifies an institution
type Type string

const (
	TypeSchool      Type = "school"
	TypeTutorCentre Type = "tutor_centre"
)

// VerificationStatus tracks platform verification of an institution
type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationVerified  VerificationStatus = "verified"
	VerificationSuspended VerificationStatus = "suspended"
)

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Location struct {
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

type Institution struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Type               Type               `json:"type"`
	Description        string             `json:"description"`
	Specialisations    []string           `json:"specialisations"`
	SupportNeeds       []string           `json:"supportNeeds"`
	AgeRange           AgeRange           `json:"ageRange"`
	Capacity           int                `json:"capacity"`
	Location           Location           `json:"location"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPhone       string             `json:"contactPhone,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// SearchFilters narrows a directory search. Zero values mean "no filter".
type SearchFilters struct {
	Query              string
	Type               Type
	Province           string
	SupportNeeds       []string
	VerificationStatus VerificationStatus
	AgeRangeMin        int
	AgeRangeMax        int
}

// Matches reports whether the institution passes every set filter. The query
// is a case-insensitive substring match on name or description; the
// support-needs filter passes when any requested need is covered; the age
// filters pass when the requested range overlaps the institution's.
func (f SearchFilters) Matches(inst *Institution) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(inst.Name), q) &&
			!strings.Contains(strings.ToLower(inst.Description), q) {
			return false
		}
	}
	if f.Type != "" && inst.Type != f.Type {
		return false
	}
	if f.Province != "" && inst.Location.Province != f.Province {
		return false
	}
	if f.VerificationStatus != "" && inst.VerificationStatus != f.VerificationStatus {
		return false
	}
	if len(f.SupportNeeds) > 0 && !coversAny(inst.SupportNeeds, f.SupportNeeds) {
		return false
	}
	if f.AgeRangeMin > 0 && inst.AgeRange.Max < f.AgeRangeMin {
		return false
	}
	if f.AgeRangeMax > 0 && inst.AgeRange.Min > f.AgeRangeMax {
		return false
	}
	return true
}

func coversAny(covered, requested []string) bool {
	for _, want := range requested {
		for _, have := range covered {
			if have == want {
				return true
			}
		}
	}
	return false
}
