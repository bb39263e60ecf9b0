// Package journal persists one row per dispatched tool call in SQLite.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one finished tool call.
type Entry struct {
	ID         string         `json:"id"`
	CallID     string         `json:"call_id"`
	Tool       string         `json:"tool"`
	Provider   string         `json:"provider,omitempty"`
	Outcome    string         `json:"outcome"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	Error      string         `json:"error,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	ExecutedAt time.Time      `json:"executed_at"`
}

// Journal is a SQLite-backed call log.
type Journal struct {
	db     *sql.DB
	ownsDB bool
}

// Open opens (or creates) the database file at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	j, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	j.ownsDB = true
	return j, nil
}

// New wraps an existing database handle and creates the tables if needed.
func New(db *sql.DB) (*Journal, error) {
	j := &Journal{db: db}
	if err := j.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return j, nil
}

func (j *Journal) initTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tool_calls (
		id TEXT PRIMARY KEY,
		call_id TEXT NOT NULL,
		tool TEXT NOT NULL,
		provider TEXT,
		outcome TEXT NOT NULL,
		arguments TEXT,
		error_message TEXT,
		duration_ms INTEGER,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_tool_calls_tool ON tool_calls(tool);
	CREATE INDEX IF NOT EXISTS idx_tool_calls_executed_at ON tool_calls(executed_at);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record inserts one entry. Missing ID and ExecutedAt are filled in.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.ExecutedAt.IsZero() {
		e.ExecutedAt = time.Now()
	}

	argsJSON, err := json.Marshal(e.Arguments)
	if err != nil {
		argsJSON = []byte("null")
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO tool_calls (id, call_id, tool, provider, outcome, arguments, error_message, duration_ms, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.CallID, e.Tool, e.Provider, e.Outcome, string(argsJSON), e.Error, e.DurationMs, e.ExecutedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record call: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. An empty tool matches every tool.
func (j *Journal) Recent(ctx context.Context, tool string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, call_id, tool, provider, outcome, arguments, error_message, duration_ms, executed_at
		FROM tool_calls
		WHERE (? = '' OR tool = ?)
		ORDER BY executed_at DESC, rowid DESC
		LIMIT ?
	`, tool, tool, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var provider, argsJSON, errMsg sql.NullString
		var duration sql.NullInt64

		if err := rows.Scan(&e.ID, &e.CallID, &e.Tool, &provider, &e.Outcome, &argsJSON, &errMsg, &duration, &e.ExecutedAt); err != nil {
			return nil, fmt.Errorf("failed to scan call: %w", err)
		}
		e.Provider = provider.String
		e.Error = errMsg.String
		e.DurationMs = duration.Int64
		if argsJSON.Valid && argsJSON.String != "" && argsJSON.String != "null" {
			if err := json.Unmarshal([]byte(argsJSON.String), &e.Arguments); err != nil {
				return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// Stats counts calls per outcome.
func (j *Journal) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM tool_calls GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		out[outcome] = n
	}
	return out, rows.Err()
}

// Close closes the database when the journal opened it.
func (j *Journal) Close() error {
	if j.ownsDB {
		return j.db.Close()
	}
	return nil
}
