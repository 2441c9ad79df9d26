// log_storage.go implements SQLite-based persistent invocation history.
//
// Separated from log.go to isolate database concerns. The main log.go
// provides the fluent API for building entries, while this file handles
// persistence and queries. The project field holds a hash of the working
// directory to enable per-directory filtering while preserving privacy.
//
// Design: Errors during logging are silently ignored (best-effort). A
// translation should succeed even if we can't record it in the history.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// ErrNotOpen is returned by queries when the logger has not been opened.
var ErrNotOpen = errors.New("history database not open")

// Logger writes history entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO history (start, end, project, source, action, input, output, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Input), nilIfEmpty(e.Output),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort logging: don't break the main operation, but report
		_, _ = fmt.Fprintf(os.Stderr, "string-fns: history write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int) ([]Entry, error) {
	q := `SELECT start, end, source, action, input, output, success, error, detail
	      FROM history ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                     Entry
			input, output, errMsg sql.NullString
			detail                sql.NullString
			success               int
		)
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &e.Action, &input, &output, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Input = input.String
		e.Output = output.String
		e.Error = errMsg.String
		e.Success = success != 0
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the current directory if home cannot be determined,
		// so logging still works in unusual environments (containers, etc.)
		return filepath.Join(".string-fns", "history.db")
	}
	return filepath.Join(home, ".string-fns", "history.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the history database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// per-directory history filtering while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the history table if it doesn't exist. Safe for
// concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			input   TEXT,
			output  TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_history_start ON history(start);
		CREATE INDEX IF NOT EXISTS idx_history_project ON history(project);
		CREATE INDEX IF NOT EXISTS idx_history_source ON history(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
