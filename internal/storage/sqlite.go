package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ewsmith/papergraph/internal/record"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectRecordFields contains the standard field list for SELECT queries.
const selectRecordFields = `id, doi, title, abstract, venue, pub_year,
	authors_json, anode_materials_json, cathode_materials_json,
	organisms_json, keywords_json, system_type,
	source_type, source_id`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			doi TEXT,
			title TEXT NOT NULL,
			abstract TEXT,
			venue TEXT,
			pub_year INTEGER,
			authors_json TEXT,
			anode_materials_json TEXT,
			cathode_materials_json TEXT,
			organisms_json TEXT,
			keywords_json TEXT,
			system_type TEXT,
			source_type TEXT,
			source_id TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_records_doi ON records(doi) WHERE doi IS NOT NULL AND doi != '';
		CREATE INDEX IF NOT EXISTS idx_records_year ON records(pub_year);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
// Returns the number of records loaded.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	records, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading records JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("clearing records table: %w", err)
	}

	stmt, err := d.db.Prepare(`
		INSERT INTO records (` + selectRecordFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing records insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, r := range records {
		authors, _ := json.Marshal(r.Authors)
		anode, _ := json.Marshal(r.AnodeMaterials)
		cathode, _ := json.Marshal(r.CathodeMaterials)
		organisms, _ := json.Marshal(r.Organisms)
		keywords, _ := json.Marshal(r.Keywords)

		_, err := stmt.Exec(
			r.ID, r.DOI, r.Title, r.Abstract, r.Venue, r.Year,
			string(authors), string(anode), string(cathode),
			string(organisms), string(keywords), r.SystemType,
			r.Source.Type, r.Source.ID,
		)
		if err != nil {
			return count, fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
		count++
	}

	return count, nil
}

// GetAllRecords returns every record in the database in id order.
func (d *DB) GetAllRecords() ([]record.PaperRecord, error) {
	rows, err := d.db.Query("SELECT " + selectRecordFields + " FROM records ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []record.PaperRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetByID returns the record with the given id, or nil if absent.
func (d *DB) GetByID(id string) (*record.PaperRecord, error) {
	row := d.db.QueryRow("SELECT "+selectRecordFields+" FROM records WHERE id = ?", id)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetByDOI returns the record with the given DOI, or nil if absent.
func (d *DB) GetByDOI(doi string) (*record.PaperRecord, error) {
	row := d.db.QueryRow("SELECT "+selectRecordFields+" FROM records WHERE doi = ?", doi)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Count returns the number of records in the database.
func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one record row, decoding the JSON-encoded list columns.
func scanRecord(s scanner) (record.PaperRecord, error) {
	var r record.PaperRecord
	var authors, anode, cathode, organisms, keywords sql.NullString
	var doi, abstract, venue, systemType, sourceType, sourceID sql.NullString
	var year sql.NullInt64

	err := s.Scan(
		&r.ID, &doi, &r.Title, &abstract, &venue, &year,
		&authors, &anode, &cathode, &organisms, &keywords, &systemType,
		&sourceType, &sourceID,
	)
	if err != nil {
		return r, err
	}

	r.DOI = doi.String
	r.Abstract = abstract.String
	r.Venue = venue.String
	r.Year = int(year.Int64)
	r.SystemType = systemType.String
	r.Source = record.ImportSource{Type: sourceType.String, ID: sourceID.String}

	for _, col := range []struct {
		raw  sql.NullString
		dest *record.StringList
	}{
		{authors, &r.Authors},
		{anode, &r.AnodeMaterials},
		{cathode, &r.CathodeMaterials},
		{organisms, &r.Organisms},
		{keywords, &r.Keywords},
	} {
		if col.raw.String == "" || col.raw.String == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(col.raw.String), col.dest); err != nil {
			return r, fmt.Errorf("decoding list column for record %s: %w", r.ID, err)
		}
	}

	return r, nil
}
