// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the stages of one run: search, fetch summaries,
// extract rows, write the result file. Stages run sequentially. Upstream
// failures do not abort the run; they are logged, kept on the Result, and
// the stage continues with an empty value.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-fetcher/internal/export"
	"github.com/pdiddy/pubmed-fetcher/internal/extract"
	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Searcher returns the identifiers matching a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Fetcher returns raw metadata keyed by identifier.
type Fetcher interface {
	Summaries(ctx context.Context, ids []string) (map[string]types.RawRecord, error)
}

// Pipeline holds the stage implementations for a run.
type Pipeline struct {
	Searcher   Searcher
	Fetcher    Fetcher
	Classifier extract.Classifier
	Log        zerolog.Logger
}

// Result holds the outcome of a run. SearchErr and DetailErr are set when
// the corresponding upstream call failed, which is the only way to tell a
// failed search from one with zero hits.
type Result struct {
	Query     string
	IDs       []string
	Records   []types.OutputRecord
	SearchErr error
	DetailErr error

	// Path is the file written, empty when the write was skipped.
	Path string
}

// Written reports whether a result file was produced.
func (r Result) Written() bool { return r.Path != "" }

// UpstreamFailed reports whether either upstream call failed.
func (r Result) UpstreamFailed() bool { return r.SearchErr != nil || r.DetailErr != nil }

// Fetch runs search, summary retrieval, and extraction. It never returns
// an error; upstream failures are recorded on the Result.
func (p *Pipeline) Fetch(ctx context.Context, query string) Result {
	res := Result{Query: query}

	ids, err := p.Searcher.Search(ctx, query)
	if err != nil {
		p.logUpstream(err, "Error fetching papers")
		res.SearchErr = err
		ids = nil
	}
	res.IDs = ids

	records, err := p.Fetcher.Summaries(ctx, ids)
	if err != nil {
		p.logUpstream(err, "Error fetching details")
		res.DetailErr = err
		records = nil
	}

	res.Records = extract.Extract(ids, records, p.Classifier)
	p.Log.Debug().
		Int("ids", len(ids)).
		Int("summaries", len(records)).
		Int("rows", len(res.Records)).
		Msg("Extraction complete")
	return res
}

// Run fetches results for query and writes them per out. When extraction
// yields no rows the write is skipped and a warning is logged. The returned
// error is non-nil only when writing fails.
func (p *Pipeline) Run(ctx context.Context, query string, out types.OutputConfig) (Result, error) {
	res := p.Fetch(ctx, query)

	if len(res.Records) == 0 {
		p.Log.Warn().Msg("No papers found.")
		return res, nil
	}

	if err := export.Write(ctx, out.File, out.Format, res.Records); err != nil {
		return res, err
	}
	res.Path = out.File
	p.Log.Info().Str("file", out.File).Int("rows", len(res.Records)).Msgf("Results saved to %s", out.File)
	return res, nil
}

func (p *Pipeline) logUpstream(err error, msg string) {
	ev := p.Log.Error().Err(err)
	if kind, ok := httputil.KindOf(err); ok {
		ev = ev.Stringer("kind", kind)
	}
	ev.Msg(msg)
}
