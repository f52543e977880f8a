// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-fetcher pipeline:
// the raw ESummary records returned by PubMed, the flattened output rows, and
// the configuration consumed by each stage.
package types

import "encoding/json"

// NotAvailable is the placeholder written for any field the upstream record
// does not provide.
const NotAvailable = "N/A"

// UnknownAuthor is the name used for an author entry that carries no name.
const UnknownAuthor = "Unknown"

// RawRecord is the unprocessed per-article metadata returned by ESummary.
// Pointer fields are nil when the field is absent or null in the response,
// which lets the extractor distinguish a missing title from an empty one.
type RawRecord struct {
	// UID is the PubMed identifier echoed back by the service.
	UID string `json:"uid,omitempty"`

	// Title is the article title.
	Title *string `json:"title,omitempty"`

	// PubDate is the publication date as PubMed formats it (e.g. "2024 Mar 5").
	PubDate *string `json:"pubdate,omitempty"`

	// Authors lists the author entries in byline order.
	Authors []RawAuthor `json:"authors,omitempty"`

	// Error is set by ESummary when a UID could not be resolved.
	Error string `json:"error,omitempty"`
}

// RawAuthor is one author entry of a RawRecord.
type RawAuthor struct {
	Name        *string `json:"name,omitempty"`
	AuthType    string  `json:"authtype,omitempty"`
	Affiliation string  `json:"affiliation,omitempty"`

	// Email.Present is false only when the entry has no email field;
	// an explicit null counts as present with an empty value.
	Email PresentString `json:"email"`
}

// PresentString is a string field that remembers whether the key appeared
// in the JSON object at all, null included.
type PresentString struct {
	Value   string
	Present bool
}

// UnmarshalJSON marks the field present and decodes a string or null.
func (s *PresentString) UnmarshalJSON(data []byte) error {
	s.Present = true
	if string(data) == "null" {
		s.Value = ""
		return nil
	}
	return json.Unmarshal(data, &s.Value)
}

// OutputRecord is one flattened row of the result file. The json and yaml
// keys match the CSV header so every output format shares one schema.
type OutputRecord struct {
	PubmedID            string `json:"PubmedID" yaml:"PubmedID"`
	Title               string `json:"Title" yaml:"Title"`
	PublicationDate     string `json:"Publication Date" yaml:"Publication Date"`
	NonAcademicAuthors  string `json:"Non-academic Author(s)" yaml:"Non-academic Author(s)"`
	CompanyAffiliations string `json:"Company Affiliation(s)" yaml:"Company Affiliation(s)"`
	CorrespondingEmail  string `json:"Corresponding Author Email" yaml:"Corresponding Author Email"`
}

// OutputHeader lists the column names of the result file in column order.
var OutputHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// Fields returns the record's values in OutputHeader order.
func (r OutputRecord) Fields() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.CorrespondingEmail,
	}
}
