// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API: ESearch for the PubMed
// identifiers matching a query, and ESummary for per-article metadata.
// Each call is a single GET with no retry; failures come back as
// *httputil.Error so callers can tell an empty result from a failed call.
package eutils

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const (
	// Database is the Entrez database every request targets.
	Database = "pubmed"

	// MaxResults caps the identifiers requested from ESearch.
	MaxResults = 5

	searchPath  = "esearch.fcgi"
	summaryPath = "esummary.fcgi"
)

// Client issues E-utilities requests.
type Client struct {
	HTTP   *http.Client
	Config types.EutilsConfig
	Log    zerolog.Logger
}

// NewClient returns a Client whose HTTP timeout comes from cfg.
func NewClient(cfg types.EutilsConfig, log zerolog.Logger) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Log:    log,
	}
}

// endpoint joins the configured base URL and an E-utilities path.
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.Config.BaseURL, "/") + "/" + path
}

// baseParams returns the parameters common to every request.
func (c *Client) baseParams() url.Values {
	params := url.Values{
		"db":      {Database},
		"retmode": {"json"},
	}
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	return params
}
