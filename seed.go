// seed.go — seed-record loaders for the demo harness.
//
// The directory can be seeded three ways: the built-in sample cast, a JSON
// file of {"key","value"} records, or a SQLite database with a contacts
// table. The external sources exist so the demo can be pointed at real data
// without recompiling.
package main

import (
	"database/sql"
	"errors"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"
)

// SeedRecord is one key/value pair destined for the table.
type SeedRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

var errNoRecords = errors.New("seed source contains no records")

// loadSeedJSON reads a JSON array of seed records from path.
func loadSeedJSON(path string) ([]SeedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []SeedRecord
	if err := sonnet.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNoRecords
	}
	return records, nil
}

// loadSeedDB reads all rows of the contacts table from a SQLite database.
// Counts first for exact slice allocation, then scans in rowid order so the
// resulting bucket chains are reproducible run to run.
func loadSeedDB(path string) ([]SeedRecord, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errNoRecords
	}

	records := make([]SeedRecord, 0, count)

	rows, err := db.Query("SELECT key, value FROM contacts ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r SeedRecord
		if err := rows.Scan(&r.Key, &r.Value); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
