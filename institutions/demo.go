package institutions

import "time"

// Provinces lists the provinces selectable in directory filters.
var Provinces = []string{
	"Western Cape",
	"Gauteng",
	"KwaZulu-Natal",
	"Eastern Cape",
	"Free State",
	"Mpumalanga",
	"North West",
	"Limpopo",
	"Northern Cape",
}

// SupportNeedOptions lists the support needs selectable in directory filters.
var SupportNeedOptions = []string{
	"ADHD",
	"ASD",
	"Dyslexia",
	"Dyscalculia",
	"Anxiety",
	"Executive Function",
	"Speech Delay",
	"Motor Skills",
	"Sensory Processing",
	"Intellectual Disability",
}

// SeedDemoData loads the demo directory into repo.
func SeedDemoData(repo Repo) error {
	for _, inst := range demoInstitutions() {
		if err := repo.Upsert(inst); err != nil {
			return err
		}
	}
	return nil
}

func demoInstitutions() []*Institution {
	return []*Institution{
		{
			ID:   "inst-1",
			Name: "Oakwood Academy",
			Type: TypeSchool,
			Description: "A specialised school focusing on learners with ADHD, dyslexia, and autism spectrum conditions. " +
				"We provide individualised education plans and small class sizes.",
			Specialisations:    []string{"ADHD Support", "Dyslexia Intervention", "ASD Accommodation", "Sensory Integration"},
			SupportNeeds:       []string{"ADHD", "Dyslexia", "ASD", "Anxiety"},
			AgeRange:           AgeRange{Min: 6, Max: 18},
			Capacity:           150,
			Location:           Location{City: "Cape Town", Province: "Western Cape", Country: "South Africa"},
			ContactEmail:       "admin@oakwood.edu",
			VerificationStatus: VerificationVerified,
			CreatedAt:          time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:   "inst-2",
			Name: "Bright Horizons Tutoring",
			Type: TypeTutorCentre,
			Description: "One-on-one tutoring centre specialising in executive function coaching and academic support " +
				"for neurodiverse learners.",
			Specialisations:    []string{"Executive Function", "Academic Support", "Study Skills", "Math Intervention"},
			SupportNeeds:       []string{"ADHD", "Executive Function", "Learning Difficulties"},
			AgeRange:           AgeRange{Min: 8, Max: 21},
			Capacity:           45,
			Location:           Location{City: "Johannesburg", Province: "Gauteng", Country: "South Africa"},
			ContactEmail:       "info@brighthorizons.edu",
			VerificationStatus: VerificationVerified,
			CreatedAt:          time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:   "inst-3",
			Name: "Sunshine Learning Centre",
			Type: TypeTutorCentre,
			Description: "Therapy-integrated learning centre offering speech therapy, occupational therapy, and " +
				"educational support.",
			Specialisations:    []string{"Speech Therapy", "OT Integration", "Social Skills Groups", "Sensory Support"},
			SupportNeeds:       []string{"Speech Delay", "Motor Skills", "ASD", "Sensory Processing"},
			AgeRange:           AgeRange{Min: 3, Max: 12},
			Capacity:           30,
			Location:           Location{City: "Durban", Province: "KwaZulu-Natal", Country: "South Africa"},
			ContactEmail:       "hello@sunshinelearning.edu",
			VerificationStatus: VerificationPending,
			CreatedAt:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:   "inst-4",
			Name: "Pathway School for Special Education",
			Type: TypeSchool,
			Description: "Full-service special education school with therapeutic support, life skills training, and " +
				"vocational preparation.",
			Specialisations:    []string{"Life Skills", "Vocational Training", "Therapeutic Support", "Transition Planning"},
			SupportNeeds:       []string{"Intellectual Disability", "ASD", "Multiple Disabilities"},
			AgeRange:           AgeRange{Min: 5, Max: 21},
			Capacity:           200,
			Location:           Location{City: "Pretoria", Province: "Gauteng", Country: "South Africa"},
			ContactEmail:       "admissions@pathwayschool.edu",
			VerificationStatus: VerificationVerified,
			CreatedAt:          time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC),
		},
	}
}
