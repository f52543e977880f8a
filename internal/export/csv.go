// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(path string, records []types.OutputRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return EncodeCSV(f, records)
}

// EncodeCSV writes records as comma-separated text to w.
func EncodeCSV(w io.Writer, records []types.OutputRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.OutputHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("writing row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
