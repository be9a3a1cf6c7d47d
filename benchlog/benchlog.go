// Package benchlog persists cmd/ringdriver run results to a local SQLite
// database so successive runs can be compared. It stores only harness
// run metadata — capacity, item count, elapsed time, throughput — never
// queue contents.
package benchlog

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/arolek/ringclock/ringerr"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	mode        TEXT NOT NULL,
	clock_kind  TEXT NOT NULL,
	capacity    INTEGER NOT NULL,
	items       INTEGER NOT NULL,
	nice        INTEGER NOT NULL,
	elapsed_sec REAL NOT NULL,
	bytes_per_sec REAL NOT NULL,
	recorded_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Store is a handle to the run-history database. Callers must Close it.
type Store struct {
	db *sql.DB
}

// Run is one recorded ringdriver invocation.
type Run struct {
	Mode        string
	ClockKind   string
	Capacity    uint32
	Items       uint64
	Nice        bool
	ElapsedSec  float64
	BytesPerSec float64
}

// Open creates or opens the SQLite database at path and ensures the runs
// table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, ringerr.New(ringerr.CodeStoreUnavailable, "benchlog.Open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, ringerr.New(ringerr.CodeStoreUnavailable, "benchlog.Open: creating schema", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts one run record.
func (s *Store) Append(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (mode, clock_kind, capacity, items, nice, elapsed_sec, bytes_per_sec)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.ClockKind, r.Capacity, r.Items, r.Nice, r.ElapsedSec, r.BytesPerSec,
	)
	if err != nil {
		return fmt.Errorf("benchlog: appending run: %w", err)
	}
	return nil
}

// Recent returns the last n runs, most recent first.
func (s *Store) Recent(n int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT mode, clock_kind, capacity, items, nice, elapsed_sec, bytes_per_sec
		 FROM runs ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("benchlog: querying recent runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Mode, &r.ClockKind, &r.Capacity, &r.Items, &r.Nice, &r.ElapsedSec, &r.BytesPerSec); err != nil {
			return nil, fmt.Errorf("benchlog: scanning run row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
