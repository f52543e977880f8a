// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func str(s string) *string { return &s }

func author(name, affiliation string) types.RawAuthor {
	return types.RawAuthor{Name: str(name), Affiliation: affiliation}
}

func withEmail(a types.RawAuthor, email string) types.RawAuthor {
	a.Email = types.PresentString{Value: email, Present: true}
	return a
}

// --- Classifier ---

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		affiliation string
		want        bool
	}{
		{"Acme Biotech Corp", true},
		{"Pfizer Inc., New York, NY", true},
		{"Institute of Technology Inc.", false},
		{"Harvard University", false},
		{"UNIVERSITY OF OXFORD", false},
		{"Boston College", false},
		{"Cold Spring Harbor Laboratory", false},
		{"Broad Institute of MIT and Harvard", false},
		{"Genentech Research Labs", false},
		{"", false},
	}
	c := DefaultClassifier()
	for _, tt := range tests {
		t.Run(tt.affiliation, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsNonAcademic(tt.affiliation))
		})
	}
}

func TestNewKeywordClassifier(t *testing.T) {
	t.Run("custom keywords are lowercased and trimmed", func(t *testing.T) {
		c := NewKeywordClassifier([]string{" Hospital ", "", "Clinic"})
		assert.Equal(t, []string{"hospital", "clinic"}, c.Keywords())
		assert.False(t, c.IsNonAcademic("Mass General Hospital"))
		assert.True(t, c.IsNonAcademic("Stanford University"))
	})

	t.Run("empty list falls back to defaults", func(t *testing.T) {
		c := NewKeywordClassifier([]string{"  "})
		assert.Equal(t, types.DefaultAcademicKeywords, c.Keywords())
	})
}

func TestClassifierFunc(t *testing.T) {
	pharma := ClassifierFunc(func(a string) bool { return strings.Contains(a, "Pharma") })
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{
			author("A", "Novartis Pharma AG"),
			author("B", "Acme Biotech Corp"),
		}},
	}

	got := Extract([]string{"1"}, records, pharma)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].NonAcademicAuthors)
	assert.Equal(t, "Novartis Pharma AG", got[0].CompanyAffiliations)
}

// --- Extract ---

func TestExtractPreservesOrder(t *testing.T) {
	ids := []string{"30", "10", "20"}
	records := map[string]types.RawRecord{
		"10": {Title: str("ten"), PubDate: str("2020")},
		"20": {Title: str("twenty"), PubDate: str("2021")},
		"30": {Title: str("thirty"), PubDate: str("2022")},
	}

	got := Extract(ids, records, nil)
	require.Len(t, got, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, got[i].PubmedID)
	}
	assert.Equal(t, "thirty", got[0].Title)
	assert.Equal(t, "ten", got[1].Title)
	assert.Equal(t, "twenty", got[2].Title)
}

func TestExtractInstituteIsAcademic(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{author("Jane Roe", "Institute of Technology Inc.")}},
	}

	got := Extract([]string{"1"}, records, nil)
	require.Len(t, got, 1)
	assert.Equal(t, types.NotAvailable, got[0].NonAcademicAuthors)
	assert.Equal(t, types.NotAvailable, got[0].CompanyAffiliations)
}

func TestExtractCompanyAuthor(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {
			Title:   str("A paper"),
			PubDate: str("2024 Jan"),
			Authors: []types.RawAuthor{
				author("John Smith", "Acme Biotech Corp"),
				author("Ann Lee", "Harvard University"),
				author("Raj Patel", "Genomix Ltd, Cambridge"),
			},
		},
	}

	got := Extract([]string{"1"}, records, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith, Raj Patel", got[0].NonAcademicAuthors)
	assert.Equal(t, "Acme Biotech Corp, Genomix Ltd, Cambridge", got[0].CompanyAffiliations)
	assert.Equal(t, "A paper", got[0].Title)
	assert.Equal(t, "2024 Jan", got[0].PublicationDate)
}

func TestExtractLastEmailWins(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{
			author("First", "Harvard University"),
			withEmail(author("Second", "Harvard University"), "second@harvard.edu"),
			author("Third", "Acme Biotech Corp"),
			withEmail(author("Fourth", "Acme Biotech Corp"), "fourth@acme.com"),
			author("Fifth", "Yale University"),
		}},
	}

	got := Extract([]string{"1"}, records, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "fourth@acme.com", got[0].CorrespondingEmail)
}

func TestExtractEmptyEmailIsNotAvailable(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{
			withEmail(author("A", ""), "a@example.com"),
			withEmail(author("B", ""), ""),
		}},
	}

	got := Extract([]string{"1"}, records, nil)
	assert.Equal(t, types.NotAvailable, got[0].CorrespondingEmail)
}

func TestExtractNullEmailOverwrites(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{
			withEmail(author("A", ""), "a@x.org"),
			{Name: str("B"), Email: types.PresentString{Present: true}},
			author("C", ""),
		}},
	}

	got := Extract([]string{"1"}, records, nil)
	assert.Equal(t, types.NotAvailable, got[0].CorrespondingEmail)
}

func TestExtractEmptyAuthorList(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Title: str("No authors"), PubDate: str("2023"), Authors: []types.RawAuthor{}},
	}

	got := Extract([]string{"1"}, records, nil)
	require.Len(t, got, 1)
	assert.Equal(t, types.NotAvailable, got[0].NonAcademicAuthors)
	assert.Equal(t, types.NotAvailable, got[0].CompanyAffiliations)
	assert.Equal(t, types.NotAvailable, got[0].CorrespondingEmail)
}

func TestExtractMissingIdentifierDefaults(t *testing.T) {
	records := map[string]types.RawRecord{
		"111": {Title: str("Present"), PubDate: str("2024")},
	}

	got := Extract([]string{"111", "222"}, records, nil)
	require.Len(t, got, 2)
	assert.Equal(t, types.OutputRecord{
		PubmedID:            "222",
		Title:               types.NotAvailable,
		PublicationDate:     types.NotAvailable,
		NonAcademicAuthors:  types.NotAvailable,
		CompanyAffiliations: types.NotAvailable,
		CorrespondingEmail:  types.NotAvailable,
	}, got[1])
}

func TestExtractNilRecordsMap(t *testing.T) {
	got := Extract([]string{"1", "2"}, nil, nil)
	require.Len(t, got, 2)
	assert.Equal(t, types.NotAvailable, got[0].Title)
	assert.Equal(t, "2", got[1].PubmedID)
}

func TestExtractUnnamedAuthor(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Authors: []types.RawAuthor{{Affiliation: "Acme Biotech Corp"}}},
	}

	got := Extract([]string{"1"}, records, nil)
	assert.Equal(t, types.UnknownAuthor, got[0].NonAcademicAuthors)
}

func TestExtractEmptyTitleIsKept(t *testing.T) {
	records := map[string]types.RawRecord{
		"1": {Title: str(""), PubDate: str("2024")},
	}

	got := Extract([]string{"1"}, records, nil)
	assert.Equal(t, "", got[0].Title)
}

func TestExtractNoIdentifiers(t *testing.T) {
	got := Extract(nil, map[string]types.RawRecord{"1": {}}, nil)
	assert.Empty(t, got)
}
