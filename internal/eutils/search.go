// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
)

// Search runs query against ESearch and returns up to MaxResults PubMed
// identifiers in relevance order. A response without a result list yields
// an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	params := c.baseParams()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(MaxResults))

	c.Log.Debug().
		Str("endpoint", c.endpoint(searchPath)).
		Str("params", params.Encode()).
		Msg("Querying PubMed")

	req, err := httputil.NewGet(ctx, c.endpoint(searchPath), params, c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var sr esearchResponse
	if err := httputil.GetJSON(c.HTTP, req, "esearch", &sr); err != nil {
		return nil, err
	}
	if sr.Result == nil {
		return []string{}, nil
	}
	if sr.Result.Error != "" {
		return nil, &httputil.Error{Op: "esearch", Kind: httputil.KindAPI, Message: sr.Result.Error}
	}

	c.Log.Debug().
		Str("count", sr.Result.Count).
		Str("translation", sr.Result.QueryTranslation).
		Int("returned", len(sr.Result.IDList)).
		Msg("Search complete")

	ids := []string(sr.Result.IDList)
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count            string  `json:"count"`
	IDList           uidList `json:"idlist"`
	QueryTranslation string  `json:"querytranslation"`
	Error            string  `json:"ERROR"`
}

// uidList accepts identifiers encoded as JSON strings or numbers.
type uidList []string

func (l *uidList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			return fmt.Errorf("identifier %s is neither string nor number", r)
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}
