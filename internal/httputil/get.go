// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the GET-and-decode helper shared by the
// E-utilities calls, and the typed error those calls return.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// NewGet builds a GET request for base with params encoded as the query
// string. An empty userAgent leaves Go's default in place.
func NewGet(ctx context.Context, base string, params url.Values, userAgent string) (*http.Request, error) {
	reqURL := base
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// GetJSON executes req once and decodes a 200 response body into v.
// Every failure is returned as an *Error tagged with op. The request is
// never retried.
func GetJSON(client *http.Client, req *http.Request, op string, v any) error {
	resp, err := client.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: classifyDoErr(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if isTimeout(err) {
			return &Error{Op: op, Kind: KindTimeout, Err: err}
		}
		return &Error{Op: op, Kind: KindMalformed, Err: err}
	}
	return nil
}

func classifyDoErr(err error) Kind {
	if isTimeout(err) {
		return KindTimeout
	}
	return KindTransport
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
