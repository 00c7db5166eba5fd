package messaging

import "time"

// SeedDemoData loads the demo threads and messages into repo. Activity times
// are relative to now so the inbox looks current.
func SeedDemoData(repo Repo) error {
	now := time.Now()

	threads := []*Thread{
		{
			ID:                        "1",
			ParticipantInstitutionIDs: []string{"inst-1", "inst-2"},
			ParticipantNames:          []string{"Bright Horizons Tutoring"},
			Subject:                   "Re: Transition support for JM",
			LinkedCaseID:              "1",
			LastMessageAt:             now.Add(-30 * time.Minute),
			UnreadCount:               2,
			CreatedAt:                 time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                        "2",
			ParticipantInstitutionIDs: []string{"inst-1", "inst-3"},
			ParticipantNames:          []string{"Sunshine Learning Centre"},
			Subject:                   "Partnership inquiry - Special needs programs",
			LastMessageAt:             now.Add(-4 * time.Hour),
			CreatedAt:                 time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                        "3",
			ParticipantInstitutionIDs: []string{"inst-1", "inst-4"},
			ParticipantNames:          []string{"Pathway School"},
			Subject:                   "Vocational program collaboration",
			LastMessageAt:             now.Add(-24 * time.Hour),
			CreatedAt:                 time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                        "4",
			ParticipantInstitutionIDs: []string{"inst-1", "inst-2"},
			ParticipantNames:          []string{"Bright Horizons Tutoring"},
			Subject:                   "Executive function coaching availability",
			LastMessageAt:             now.Add(-48 * time.Hour),
			CreatedAt:                 time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	messages := []*Message{
		{
			ID:                  "1",
			ThreadID:            "1",
			SenderID:            "user-2",
			SenderName:          "Dr. Emily Chen",
			SenderInstitutionID: "inst-2",
			Content: "Thank you for reaching out about JM's transition. We have reviewed the case notes and believe " +
				"we can provide the support needed. When would be a good time for a video call to discuss further?",
			LinkedCaseID: "1",
			CreatedAt:    now.Add(-30 * time.Minute),
		},
		{
			ID:                  "2",
			ThreadID:            "1",
			SenderID:            "user-2",
			SenderName:          "Dr. Emily Chen",
			SenderInstitutionID: "inst-2",
			Content: "Also, I noticed the case mentions reading intervention needs. We have a specialist available " +
				"on Tuesdays and Thursdays who could work with JM.",
			LinkedCaseID: "1",
			CreatedAt:    now.Add(-25 * time.Minute),
		},
		{
			ID:                  "3",
			ThreadID:            "1",
			SenderID:            "user-1",
			SenderName:          "James Peterson",
			SenderInstitutionID: "inst-1",
			Content: "That sounds perfect. JM's parents have expressed a preference for afternoon sessions. " +
				"Would 3pm on Tuesdays work for an initial assessment?",
			LinkedCaseID: "1",
			IsRead:       true,
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:                  "4",
			ThreadID:            "1",
			SenderID:            "user-1",
			SenderName:          "James Peterson",
			SenderInstitutionID: "inst-1",
			Content: "I've attached the latest IEP and assessment reports for your review. Please let me know if " +
				"you need any additional documentation.",
			LinkedCaseID: "1",
			IsRead:       true,
			CreatedAt:    now.Add(-24 * time.Hour),
		},
	}

	for _, t := range threads {
		if err := repo.UpsertThread(t); err != nil {
			return err
		}
	}
	for _, msg := range messages {
		if err := repo.PostMessage(msg); err != nil {
			return err
		}
	}

	// PostMessage bumps thread activity; restore the seeded times
	for _, t := range threads {
		if err := repo.UpsertThread(t); err != nil {
			return err
		}
	}
	return nil
}
