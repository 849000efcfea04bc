package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is a PostgreSQL-backed EdgeStore. The uniqueness invariant is
// enforced by the database: a unique constraint on the (from_id, to_id,
// kind) triple plus an ON CONFLICT upsert, so concurrent runs cannot
// create parallel edges of the same kind.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects to PostgreSQL and ensures the edge table exists.
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pooling configuration
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &PGStore{pool: pool}

	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *PGStore) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS workflow_edges (
			from_id     TEXT NOT NULL,
			to_id       TEXT NOT NULL,
			kind        TEXT NOT NULL,
			confidence  DOUBLE PRECISION NOT NULL,
			cluster_key TEXT NOT NULL DEFAULT '',
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (from_id, to_id, kind)
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create workflow_edges table: %w", err)
	}
	return nil
}

// UpsertEdge creates or overwrites the edge for its triple.
func (s *PGStore) UpsertEdge(ctx context.Context, edge Edge) error {
	if err := validateEdge(edge); err != nil {
		return err
	}

	query := `
		INSERT INTO workflow_edges (from_id, to_id, kind, confidence, cluster_key, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (from_id, to_id, kind)
		DO UPDATE SET confidence = EXCLUDED.confidence,
		              cluster_key = EXCLUDED.cluster_key,
		              updated_at = now()
	`

	_, err := s.pool.Exec(ctx, query,
		edge.FromID,
		edge.ToID,
		string(edge.Kind),
		edge.Confidence,
		edge.ClusterKey,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert edge %s: %w", edge.Key(), err)
	}

	return nil
}

// EdgeCount returns the number of distinct triples stored.
func (s *PGStore) EdgeCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM workflow_edges`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count edges: %w", err)
	}
	return count, nil
}

// Ping checks database connectivity.
func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}
