package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
	"github.com/lehigh-university-libraries/orcid2vivo/testutil/containers"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, containers.PostgresDSN(t))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	_, err = s.pool.Exec(ctx, `TRUNCATE triples`)
	require.NoError(t, err)
	return s
}

func TestWriteIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	triples := []rdf.Triple{
		{Subject: "http://x/a", Predicate: "http://x/p", Object: rdf.IRI("http://x/b")},
		{Subject: "http://x/a", Predicate: "http://x/p", Object: rdf.Literal("http://x/b")},
		{Subject: "http://x/a", Predicate: "http://x/q", Object: rdf.TypedLiteral("2020-01-01T00:00:00", "http://www.w3.org/2001/XMLSchema#dateTime")},
	}

	inserted, err := s.Write(ctx, triples)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted, "iri and literal objects with the same text are distinct")

	inserted, err = s.Write(ctx, triples)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestWriteEmpty(t *testing.T) {
	s := openTestStore(t)
	inserted, err := s.Write(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestWriteLongLiteral(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	overview := strings.Repeat("Surface chemistry of catalytic oxides. ", 130)
	require.Greater(t, len(overview), 5000)
	triples := []rdf.Triple{
		{Subject: "http://x/a", Predicate: "http://vivoweb.org/ontology/core#overview", Object: rdf.Literal(overview)},
	}

	inserted, err := s.Write(ctx, triples)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	inserted, err = s.Write(ctx, triples)
	require.NoError(t, err)
	assert.Zero(t, inserted, "a long literal is deduplicated like any other")

	var stored string
	require.NoError(t, s.pool.QueryRow(ctx, `SELECT object FROM triples WHERE subject = 'http://x/a'`).Scan(&stored))
	assert.Equal(t, overview, stored)
}
