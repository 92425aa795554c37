package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultSQLiteFileName is the database name used when no path is configured.
const DefaultSQLiteFileName = "resume_analysis_history.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	seq            INTEGER PRIMARY KEY AUTOINCREMENT,
	id             TEXT NOT NULL UNIQUE,
	created_at     TEXT NOT NULL,
	filename       TEXT NOT NULL,
	match_score    REAL NOT NULL,
	semantic_score REAL NOT NULL,
	suggestions    TEXT NOT NULL,
	resume_text    TEXT NOT NULL,
	job_text       TEXT NOT NULL
)`

// SQLiteStore keeps one row per analysis in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and ensures the schema exists.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultSQLiteFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StoreError{Backend: BackendSQLite, Op: "mkdir", Cause: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Backend: BackendSQLite, Op: "open", Cause: err}
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, &StoreError{Backend: BackendSQLite, Op: "migrate", Cause: err}
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns all rows ordered by insertion sequence.
func (s *SQLiteStore) Load(ctx context.Context) ([]types.AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, filename, match_score, semantic_score, suggestions, resume_text, job_text
		FROM analyses
		ORDER BY seq`)
	if err != nil {
		return nil, &StoreError{Backend: BackendSQLite, Op: "query", Cause: err}
	}
	defer func() { _ = rows.Close() }()

	records := []types.AnalysisRecord{}
	for rows.Next() {
		var (
			rec         types.AnalysisRecord
			id          string
			createdAt   string
			suggestions string
		)
		if err := rows.Scan(&id, &createdAt, &rec.Filename, &rec.MatchScore, &rec.SemanticScore,
			&suggestions, &rec.ResumeText, &rec.JobText); err != nil {
			return nil, &StoreError{Backend: BackendSQLite, Op: "scan", Cause: err}
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, &CorruptHistoryError{Source: "sqlite", Message: "invalid id", Cause: err}
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, &CorruptHistoryError{Source: "sqlite", Message: "invalid created_at", Cause: err}
		}
		if err := json.Unmarshal([]byte(suggestions), &rec.Suggestions); err != nil {
			return nil, &CorruptHistoryError{Source: "sqlite", Message: "invalid suggestions", Cause: err}
		}
		records = append(records, rec.Clone())
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Backend: BackendSQLite, Op: "iterate", Cause: err}
	}
	return records, nil
}

// Append inserts one row.
func (s *SQLiteStore) Append(ctx context.Context, record types.AnalysisRecord) error {
	suggestions, err := marshalSuggestions(record.Suggestions)
	if err != nil {
		return &StoreError{Backend: BackendSQLite, Op: "encode", Cause: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, created_at, filename, match_score, semantic_score, suggestions, resume_text, job_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID.String(), record.CreatedAt.UTC().Format(time.RFC3339Nano), record.Filename,
		record.MatchScore, record.SemanticScore, suggestions, record.ResumeText, record.JobText,
	)
	if err != nil {
		return &StoreError{Backend: BackendSQLite, Op: "insert", Cause: err}
	}
	return nil
}

// Clear deletes every row.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return &StoreError{Backend: BackendSQLite, Op: "delete", Cause: err}
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func marshalSuggestions(suggestions []string) (string, error) {
	if suggestions == nil {
		suggestions = []string{}
	}
	b, err := json.Marshal(suggestions)
	return string(b), err
}
