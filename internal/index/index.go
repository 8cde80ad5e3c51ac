// Package index maintains an ephemeral SQLite index of participants and the
// works crediting them, rebuilt from a credit file, for name search.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matsen/bacon/internal/credit"
	"github.com/matsen/bacon/internal/graph"
)

// ErrNotBuilt is returned when the index has never been rebuilt.
var ErrNotBuilt = errors.New("name index has not been built")

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Match is one participant returned by a search.
type Match struct {
	Name          string `json:"name"`
	Works         int    `json:"works"`
	Collaborators int    `json:"collaborators"`
}

// Stats summarises a rebuild.
type Stats struct {
	Source       string    `json:"source"`
	Works        int       `json:"works"`
	Participants int       `json:"participants"`
	Credits      int       `json:"credits"`
	BuiltAt      time.Time `json:"built_at"`
}

// OpenDB opens or creates a SQLite index at the given path, creating parent
// directories as needed.
func OpenDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

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
		CREATE TABLE IF NOT EXISTS works (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS participants (
			name TEXT PRIMARY KEY,
			works INTEGER NOT NULL,
			collaborators INTEGER NOT NULL
		);

		-- One row per (work, participant, category)
		CREATE TABLE IF NOT EXISTS credits (
			work_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (work_id, name, category)
		);

		CREATE INDEX IF NOT EXISTS idx_credits_name ON credits(name);

		CREATE VIRTUAL TABLE IF NOT EXISTS participants_fts USING fts5(name);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the index and rebuilds it from a credit file.
func (d *DB) RebuildFromJSONL(path string, categories []string) (*Stats, error) {
	records, err := credit.ReadAll(path, categories)
	if err != nil {
		return nil, fmt.Errorf("reading credits: %w", err)
	}
	return d.Rebuild(path, records, categories)
}

// Rebuild clears the index and fills it from parsed records. The collaborator
// count of each participant is its degree in the collaboration graph.
func (d *DB) Rebuild(source string, records []credit.Record, categories []string) (*Stats, error) {
	g := graph.Build(records, categories)

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"works", "participants", "credits", "participants_fts", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return nil, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	workStmt, err := tx.Prepare(`INSERT INTO works (id, title) VALUES (?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing works insert: %w", err)
	}
	defer workStmt.Close()

	creditStmt, err := tx.Prepare(`INSERT OR IGNORE INTO credits (work_id, name, category) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing credits insert: %w", err)
	}
	defer creditStmt.Close()

	stats := &Stats{Source: source, Works: len(records)}
	works := make(map[string]int)

	for i, rec := range records {
		if _, err := workStmt.Exec(i, rec.Title); err != nil {
			return nil, fmt.Errorf("inserting work %d: %w", i, err)
		}
		for _, cat := range categories {
			for _, raw := range rec.Credits[cat] {
				name := credit.Normalize(raw)
				res, err := creditStmt.Exec(i, name, cat)
				if err != nil {
					return nil, fmt.Errorf("inserting credit %q: %w", name, err)
				}
				if n, _ := res.RowsAffected(); n > 0 {
					stats.Credits++
				}
			}
		}
		for _, name := range rec.Participants(categories) {
			works[name]++
		}
	}

	partStmt, err := tx.Prepare(`INSERT INTO participants (name, works, collaborators) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing participants insert: %w", err)
	}
	defer partStmt.Close()

	ftsStmt, err := tx.Prepare(`INSERT INTO participants_fts (name) VALUES (?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for name, count := range works {
		collaborators := g.Degree(name)
		if collaborators < 0 {
			collaborators = 0
		}
		if _, err := partStmt.Exec(name, count, collaborators); err != nil {
			return nil, fmt.Errorf("inserting participant %q: %w", name, err)
		}
		if _, err := ftsStmt.Exec(name); err != nil {
			return nil, fmt.Errorf("inserting fts for %q: %w", name, err)
		}
	}
	stats.Participants = len(works)

	stats.BuiltAt = time.Now().UTC().Truncate(time.Second)
	meta := map[string]string{
		"source":   source,
		"built_at": stats.BuiltAt.Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return nil, fmt.Errorf("writing meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing index: %w", err)
	}
	return stats, nil
}

// Source returns the credit file the index was last built from.
func (d *DB) Source() (string, error) {
	var source string
	err := d.db.QueryRow(`SELECT value FROM meta WHERE key = 'source'`).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotBuilt
	}
	if err != nil {
		return "", fmt.Errorf("reading index source: %w", err)
	}
	return source, nil
}

// Search finds participants whose name words start with every word of the
// query, most prolific first.
func (d *DB) Search(query string, limit int) ([]Match, error) {
	ftsQuery := prepareNameQuery(query)
	if ftsQuery == "" {
		return []Match{}, nil
	}

	rows, err := d.db.Query(`
		SELECT name, works, collaborators
		FROM participants
		WHERE name IN (SELECT name FROM participants_fts WHERE participants_fts MATCH ?)
		ORDER BY works DESC, name ASC
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Name, &m.Works, &m.Collaborators); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// WorksOf returns the titles of the works crediting name, in file order.
func (d *DB) WorksOf(name string) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT DISTINCT w.id, w.title
		FROM works w JOIN credits c ON c.work_id = w.id
		WHERE c.name = ?
		ORDER BY w.id`, name)
	if err != nil {
		return nil, fmt.Errorf("listing works: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var id int
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("scanning work: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// Count returns the number of indexed participants.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting participants: %w", err)
	}
	return n, nil
}

// prepareNameQuery turns free text into an FTS5 prefix query where every
// word must match ("kev bac" → "kev"* "bac"*).
func prepareNameQuery(query string) string {
	var terms []string
	for _, part := range strings.Fields(query) {
		escaped := strings.ReplaceAll(part, "\"", "\"\"")
		terms = append(terms, "\""+escaped+"\"*")
	}
	return strings.Join(terms, " ")
}
