package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	seq            BIGSERIAL PRIMARY KEY,
	id             UUID NOT NULL UNIQUE,
	created_at     TIMESTAMPTZ NOT NULL,
	filename       TEXT NOT NULL,
	match_score    DOUBLE PRECISION NOT NULL,
	semantic_score DOUBLE PRECISION NOT NULL,
	suggestions    JSONB NOT NULL,
	resume_text    TEXT NOT NULL,
	job_text       TEXT NOT NULL
)`

// PostgresStore keeps one row per analysis in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgresStore establishes a connection pool and ensures the schema exists.
func ConnectPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required for the postgres backend")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StoreError{Backend: BackendPostgres, Op: "connect", Cause: err}
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StoreError{Backend: BackendPostgres, Op: "ping", Cause: err}
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, &StoreError{Backend: BackendPostgres, Op: "migrate", Cause: err}
	}
	return &PostgresStore{pool: pool}, nil
}

// Load returns all rows ordered by insertion sequence.
func (s *PostgresStore) Load(ctx context.Context) ([]types.AnalysisRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, created_at, filename, match_score, semantic_score, suggestions, resume_text, job_text
		FROM analyses
		ORDER BY seq`)
	if err != nil {
		return nil, &StoreError{Backend: BackendPostgres, Op: "query", Cause: err}
	}
	defer rows.Close()

	records := []types.AnalysisRecord{}
	for rows.Next() {
		var (
			rec       types.AnalysisRecord
			id        uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &createdAt, &rec.Filename, &rec.MatchScore, &rec.SemanticScore,
			&rec.Suggestions, &rec.ResumeText, &rec.JobText); err != nil {
			return nil, &StoreError{Backend: BackendPostgres, Op: "scan", Cause: err}
		}
		rec.ID = id
		rec.CreatedAt = createdAt.UTC()
		records = append(records, rec.Clone())
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Backend: BackendPostgres, Op: "iterate", Cause: err}
	}
	return records, nil
}

// Append inserts one row.
func (s *PostgresStore) Append(ctx context.Context, record types.AnalysisRecord) error {
	suggestions, err := marshalSuggestions(record.Suggestions)
	if err != nil {
		return &StoreError{Backend: BackendPostgres, Op: "encode", Cause: err}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO analyses (id, created_at, filename, match_score, semantic_score, suggestions, resume_text, job_text)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)`,
		record.ID, record.CreatedAt, record.Filename, record.MatchScore, record.SemanticScore,
		suggestions, record.ResumeText, record.JobText,
	)
	if err != nil {
		return &StoreError{Backend: BackendPostgres, Op: "insert", Cause: err}
	}
	return nil
}

// Clear deletes every row.
func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM analyses`); err != nil {
		return &StoreError{Backend: BackendPostgres, Op: "delete", Cause: err}
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
