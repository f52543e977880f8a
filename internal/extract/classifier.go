// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Classifier decides whether an author affiliation is non-academic.
// Extract depends only on this interface, so a curated institution list or
// a model-backed classifier can replace the keyword heuristic.
type Classifier interface {
	IsNonAcademic(affiliation string) bool
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(affiliation string) bool

// IsNonAcademic calls f(affiliation).
func (f ClassifierFunc) IsNonAcademic(affiliation string) bool { return f(affiliation) }

// KeywordClassifier treats an affiliation as academic when it contains any
// keyword as a case-insensitive substring. Matching is deliberately loose:
// "Laboratory" hits "lab", and "Institute of Technology Inc." is academic.
type KeywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier returns a classifier for keywords. Blank keywords are
// ignored; an empty list falls back to types.DefaultAcademicKeywords.
func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	var kw []string
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kw = append(kw, k)
		}
	}
	if len(kw) == 0 {
		kw = append(kw, types.DefaultAcademicKeywords...)
	}
	return &KeywordClassifier{keywords: kw}
}

// DefaultClassifier returns the keyword classifier over
// university, college, lab, and institute.
func DefaultClassifier() *KeywordClassifier {
	return NewKeywordClassifier(nil)
}

// IsNonAcademic reports whether affiliation is non-empty and matches none
// of the academic keywords.
func (c *KeywordClassifier) IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// Keywords returns a copy of the keyword list.
func (c *KeywordClassifier) Keywords() []string {
	return append([]string(nil), c.keywords...)
}
