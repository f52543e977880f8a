// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const createPapers = `CREATE TABLE papers (
	position INTEGER PRIMARY KEY,
	pubmed_id TEXT NOT NULL,
	title TEXT NOT NULL,
	publication_date TEXT NOT NULL,
	non_academic_authors TEXT NOT NULL,
	company_affiliations TEXT NOT NULL,
	corresponding_email TEXT NOT NULL
)`

const insertPaper = `INSERT INTO papers
	(position, pubmed_id, title, publication_date, non_academic_authors, company_affiliations, corresponding_email)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite writes records to a fresh SQLite database at path with a
// single papers table. position keeps the row order.
func WriteSQLite(ctx context.Context, path string, records []types.OutputRecord) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createPapers); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertPaper)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i+1,
			r.PubmedID, r.Title, r.PublicationDate,
			r.NonAcademicAuthors, r.CompanyAffiliations, r.CorrespondingEmail,
		); err != nil {
			return fmt.Errorf("inserting %s: %w", r.PubmedID, err)
		}
	}

	return tx.Commit()
}
