// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract flattens raw PubMed summaries into output rows and flags
// authors whose affiliation looks non-academic.
package extract

import (
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const listSep = ", "

// Extract returns one OutputRecord per identifier in ids, in the same order.
// An identifier missing from records still yields a row, with every field
// except PubmedID set to types.NotAvailable. A nil classifier uses
// DefaultClassifier.
func Extract(ids []string, records map[string]types.RawRecord, classifier Classifier) []types.OutputRecord {
	if classifier == nil {
		classifier = DefaultClassifier()
	}

	out := make([]types.OutputRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, extractOne(id, records[id], classifier))
	}
	return out
}

func extractOne(id string, rec types.RawRecord, classifier Classifier) types.OutputRecord {
	var names, affiliations []string
	var email string

	for _, a := range rec.Authors {
		name := types.UnknownAuthor
		if a.Name != nil {
			name = *a.Name
		}
		if classifier.IsNonAcademic(a.Affiliation) {
			names = append(names, name)
			affiliations = append(affiliations, a.Affiliation)
		}
		// Last email-bearing author wins.
		if a.Email.Present {
			email = a.Email.Value
		}
	}

	return types.OutputRecord{
		PubmedID:            id,
		Title:               valueOr(rec.Title),
		PublicationDate:     valueOr(rec.PubDate),
		NonAcademicAuthors:  joinOr(names),
		CompanyAffiliations: joinOr(affiliations),
		CorrespondingEmail:  nonEmptyOr(email),
	}
}

// valueOr returns *s, or types.NotAvailable when s is nil.
func valueOr(s *string) string {
	if s == nil {
		return types.NotAvailable
	}
	return *s
}

// nonEmptyOr returns s, or types.NotAvailable when s is empty.
func nonEmptyOr(s string) string {
	if s == "" {
		return types.NotAvailable
	}
	return s
}

func joinOr(items []string) string {
	joined := strings.Join(items, listSep)
	if joined == "" {
		return types.NotAvailable
	}
	return joined
}
