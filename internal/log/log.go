// Package log provides centralised invocation history for string-fns.
// Entries are stored in ~/.string-fns/history.db and track CLI commands
// and MCP tool invocations across working directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write entries:
//
//	log.Event("glob:translate", "translate").
//		Input(pattern).
//		Output(regex).
//		Write(err)
//
//	log.Event("mcp:hex_decode", "decode").
//		Input(digits).
//		Write(err)
//
// The source parameter follows the format "{command}" or "{command}:{verb}"
// for CLI commands and "mcp:{tool}" for MCP tools.
//
// Logging is best-effort: failures never break the main operation.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single history entry.
type Entry struct {
	Source string // e.g., "glob:translate", "mcp:base_convert"
	Action string // verb: translate, match, encode, decode, convert, ...
	Input  string // primary input (pattern, digits, path list, ...)
	Output string // primary result, when short enough to be useful

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a history entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to persist the entry.
type Builder struct {
	entry Entry
}

// Event creates a new entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Input sets the primary input of the operation.
func (b *Builder) Input(in string) *Builder {
	b.entry.Input = in
	return b
}

// Output sets the primary result of the operation. Skip for bulky results;
// Detail with a summary (e.g. a count) reads better in history listings.
func (b *Builder) Output(out string) *Builder {
	b.entry.Output = out
	return b
}

// Detail adds a key-value pair to the entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write persists the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries.
// The dir should be the working directory of the invocation.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first. A zero limit returns
// all entries. Returns an error if the logger is not open.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
