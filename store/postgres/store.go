// Package postgres persists crosswalk triples in a PostgreSQL table. Writes
// are idempotent: a triple already present is left as is.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// Literals can exceed the btree row limit, so the key carries a digest of
// the object rather than the object itself.
const schema = `
CREATE TABLE IF NOT EXISTS triples (
	subject     TEXT NOT NULL,
	predicate   TEXT NOT NULL,
	object      TEXT NOT NULL,
	object_kind TEXT NOT NULL,
	datatype    TEXT NOT NULL DEFAULT '',
	object_hash TEXT GENERATED ALWAYS AS (md5(object)) STORED,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (subject, predicate, object_hash, object_kind, datatype)
);
CREATE INDEX IF NOT EXISTS triples_object_idx ON triples (object) WHERE object_kind = 'iri';
`

const insertTriple = `
INSERT INTO triples (subject, predicate, object, object_kind, datatype)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT DO NOTHING`

// Store writes triples through a connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Migrate creates the triples table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrating triples table: %w", err)
	}
	return nil
}

// Write inserts triples in one transaction and returns how many were new.
// Either every triple is stored or none is.
func (s *Store) Write(ctx context.Context, triples []rdf.Triple) (int64, error) {
	if len(triples) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, t := range triples {
		batch.Queue(insertTriple, t.Subject, t.Predicate, t.Object.Value, t.Object.Kind.String(), t.Object.Datatype)
	}

	results := tx.SendBatch(ctx, batch)
	var inserted int64
	for range triples {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, fmt.Errorf("inserting triple: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing triples: %w", err)
	}
	return inserted, nil
}

// Count returns the number of stored triples.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM triples`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting triples: %w", err)
	}
	return n, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
