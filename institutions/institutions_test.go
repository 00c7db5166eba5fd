package institutions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neurobridge/dashboard/institutions"
)

func seededRepo(t *testing.T) *institutions.InMemoryRepo {
	t.Helper()
	repo := institutions.NewInMemoryRepo()
	require.NoError(t, institutions.SeedDemoData(repo))
	return repo
}

func names(results []*institutions.Institution) []string {
	out := make([]string, 0, len(results))
	for _, inst := range results {
		out = append(out, inst.Name)
	}
	return out
}

func TestInMemoryRepo_UpsertRequiresID(t *testing.T) {
	repo := institutions.NewInMemoryRepo()
	require.Error(t, repo.Upsert(&institutions.Institution{Name: "No ID"}))
}

func TestInMemoryRepo_Get(t *testing.T) {
	repo := seededRepo(t)

	inst, err := repo.Get("inst-1")
	require.NoError(t, err)
	require.Equal(t, "Oakwood Academy", inst.Name)

	_, err = repo.Get("inst-999")
	require.ErrorIs(t, err, institutions.ErrNotFound)
}

func TestInMemoryRepo_SearchSortsByName(t *testing.T) {
	repo := seededRepo(t)

	results, err := repo.Search(institutions.SearchFilters{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"Bright Horizons Tutoring",
		"Oakwood Academy",
		"Pathway School for Special Education",
		"Sunshine Learning Centre",
	}, names(results))
}

func TestSearchFilters(t *testing.T) {
	repo := seededRepo(t)

	tests := []struct {
		name      string
		filters   institutions.SearchFilters
		wantNames []string
	}{
		{
			name:      "query matches name, case-insensitive",
			filters:   institutions.SearchFilters{Query: "oakwood"},
			wantNames: []string{"Oakwood Academy"},
		},
		{
			name:      "query matches description",
			filters:   institutions.SearchFilters{Query: "executive function"},
			wantNames: []string{"Bright Horizons Tutoring"},
		},
		{
			name:      "type filter",
			filters:   institutions.SearchFilters{Type: institutions.TypeSchool},
			wantNames: []string{"Oakwood Academy", "Pathway School for Special Education"},
		},
		{
			name:      "province filter",
			filters:   institutions.SearchFilters{Province: "Gauteng"},
			wantNames: []string{"Bright Horizons Tutoring", "Pathway School for Special Education"},
		},
		{
			name:      "verification status filter",
			filters:   institutions.SearchFilters{VerificationStatus: institutions.VerificationPending},
			wantNames: []string{"Sunshine Learning Centre"},
		},
		{
			name:      "any requested support need passes",
			filters:   institutions.SearchFilters{SupportNeeds: []string{"Dyslexia", "Speech Delay"}},
			wantNames: []string{"Oakwood Academy", "Sunshine Learning Centre"},
		},
		{
			name:      "age range must overlap",
			filters:   institutions.SearchFilters{AgeRangeMin: 13, AgeRangeMax: 16},
			wantNames: []string{"Bright Horizons Tutoring", "Oakwood Academy", "Pathway School for Special Education"},
		},
		{
			name: "filters combine",
			filters: institutions.SearchFilters{
				Type:     institutions.TypeTutorCentre,
				Province: "Gauteng",
			},
			wantNames: []string{"Bright Horizons Tutoring"},
		},
		{
			name:      "no matches yields an empty result, not an error",
			filters:   institutions.SearchFilters{Query: "nonexistent"},
			wantNames: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := repo.Search(tc.filters)
			require.NoError(t, err)
			require.Equal(t, tc.wantNames, names(results))
		})
	}
}
