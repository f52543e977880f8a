// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const (
	idWidth      = 10
	titleWidth   = 50
	dateWidth    = 12
	authorsWidth = 24
	emailWidth   = 28
)

// FormatTable writes records as a fixed-width preview table to w. Cells are
// truncated by display width so titles with wide characters stay aligned.
func FormatTable(records []types.OutputRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	row := func(cells ...string) {
		widths := []int{idWidth, titleWidth, dateWidth, authorsWidth, emailWidth}
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = cell(c, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	row("PubmedID", "Title", "Date", "Non-academic", "Email")
	fmt.Fprintln(w, strings.Repeat("-", idWidth+titleWidth+dateWidth+authorsWidth+emailWidth+8))
	for _, r := range records {
		row(r.PubmedID, r.Title, r.PublicationDate, r.NonAcademicAuthors, r.CorrespondingEmail)
	}
	fmt.Fprintf(w, "\n%d papers\n", len(records))
}

// cell truncates s to width display columns and pads it on the right.
func cell(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	return runewidth.FillRight(s, width)
}
