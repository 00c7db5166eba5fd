package cases

import "time"

// SeedDemoData loads the demo caseload into repo.
func SeedDemoData(repo Repo) error {
	for _, c := range demoCases() {
		if err := repo.Upsert(c); err != nil {
			return err
		}
	}
	return nil
}

func demoCases() []*LearnerCase {
	return []*LearnerCase{
		{
			ID:                   "1",
			ReferenceNumber:      "NB-2025-001",
			LearnerInitials:      "JM",
			DateOfBirth:          time.Date(2012, 5, 15, 0, 0, 0, 0, time.UTC),
			AgeAtReferral:        12,
			CurrentInstitutionID: "inst-1",
			TargetInstitutionID:  "inst-2",
			Status:               StatusPendingTransfer,
			SupportNeeds:         []string{"ADHD Support", "Reading Intervention", "Social Skills"},
			CreatedAt:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "2",
			ReferenceNumber:      "NB-2025-002",
			LearnerInitials:      "SK",
			DateOfBirth:          time.Date(2010, 11, 20, 0, 0, 0, 0, time.UTC),
			AgeAtReferral:        14,
			CurrentInstitutionID: "inst-1",
			Status:               StatusInReview,
			SupportNeeds:         []string{"ASD Accommodation", "Sensory Support", "Executive Function"},
			CreatedAt:            time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "3",
			ReferenceNumber:      "NB-2025-003",
			LearnerInitials:      "AB",
			DateOfBirth:          time.Date(2014, 3, 8, 0, 0, 0, 0, time.UTC),
			AgeAtReferral:        10,
			CurrentInstitutionID: "inst-1",
			Status:               StatusDraft,
			SupportNeeds:         []string{"Dyslexia Intervention", "Writing Support"},
			CreatedAt:            time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "4",
			ReferenceNumber:      "NB-2024-089",
			LearnerInitials:      "TW",
			DateOfBirth:          time.Date(2011, 7, 22, 0, 0, 0, 0, time.UTC),
			AgeAtReferral:        13,
			CurrentInstitutionID: "inst-1",
			TargetInstitutionID:  "inst-3",
			Status:               StatusTransferred,
			SupportNeeds:         []string{"Speech Therapy", "Social Skills", "Anxiety Management"},
			CreatedAt:            time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                   "5",
			ReferenceNumber:      "NB-2024-076",
			LearnerInitials:      "LR",
			DateOfBirth:          time.Date(2009, 12, 1, 0, 0, 0, 0, time.UTC),
			AgeAtReferral:        15,
			CurrentInstitutionID: "inst-1",
			TargetInstitutionID:  "inst-4",
			Status:               StatusClosed,
			SupportNeeds:         []string{"Vocational Prep", "Life Skills", "Transition Support"},
			CreatedAt:            time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:            time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		},
	}
}
