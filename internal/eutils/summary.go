// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// uidsKey is the bookkeeping entry ESummary puts alongside the records.
const uidsKey = "uids"

// Summaries fetches metadata for ids in one ESummary request and returns it
// keyed by identifier. Identifiers the service does not return are simply
// absent from the map. An empty ids slice returns an empty map without
// touching the network.
func (c *Client) Summaries(ctx context.Context, ids []string) (map[string]types.RawRecord, error) {
	if len(ids) == 0 {
		return map[string]types.RawRecord{}, nil
	}

	params := c.baseParams()
	params.Set("id", strings.Join(ids, ","))

	c.Log.Debug().
		Strs("ids", ids).
		Str("endpoint", c.endpoint(summaryPath)).
		Msg("Fetching details for paper IDs")

	req, err := httputil.NewGet(ctx, c.endpoint(summaryPath), params, c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var sr esummaryResponse
	if err := httputil.GetJSON(c.HTTP, req, "esummary", &sr); err != nil {
		return nil, err
	}
	if sr.Error != "" {
		return nil, &httputil.Error{Op: "esummary", Kind: httputil.KindAPI, Message: sr.Error}
	}

	records := make(map[string]types.RawRecord, len(sr.Result))
	for uid, raw := range sr.Result {
		if uid == uidsKey {
			continue
		}
		var rec types.RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &httputil.Error{
				Op:   "esummary",
				Kind: httputil.KindMalformed,
				Err:  fmt.Errorf("record %s: %w", uid, err),
			}
		}
		if rec.Error != "" {
			c.Log.Debug().Str("uid", uid).Str("reason", rec.Error).Msg("Summary unavailable")
		}
		records[uid] = rec
	}
	return records, nil
}

// ESummary JSON structures. Result mixes the "uids" array with one object
// per identifier, so records are decoded individually.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
	Error  string                     `json:"error"`
}
