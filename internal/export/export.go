// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes output records to the result file. CSV is the
// default; JSON, YAML, and SQLite carry the same six columns. Every writer
// replaces an existing file at the destination.
package export

import (
	"context"
	"fmt"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Write serializes records to path in the given format, preserving order.
func Write(ctx context.Context, path string, format types.OutputFormat, records []types.OutputRecord) error {
	switch format {
	case types.FormatCSV, "":
		return WriteCSV(path, records)
	case types.FormatJSON:
		return WriteJSON(path, records)
	case types.FormatYAML:
		return WriteYAML(path, records)
	case types.FormatSQLite:
		return WriteSQLite(ctx, path, records)
	default:
		return fmt.Errorf("unsupported output format %q (want csv, json, yaml, or sqlite)", format)
	}
}
