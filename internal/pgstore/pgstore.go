// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// pgstore.go — PostgreSQL archive tier: one fixed table of encoded
// sequence payloads keyed by id, with upsert semantics and schema
// bootstrap.

// Package pgstore provides the PostgreSQL archive tier adapter.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMiss is returned by Get when no row exists for the id.
var ErrMiss = errors.New("pgstore: miss")

const tableName = "tape_sequences"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS ` + tableName + ` (
	id         TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store is the PostgreSQL archive tier adapter.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new Postgres tier Store from an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the archive table if it does not exist. Safe to
// call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("pgstore schema: %w", err)
	}
	return nil
}

// Set upserts the payload for id.
func (s *Store) Set(ctx context.Context, id string, data []byte) error {
	sql := "INSERT INTO " + tableName + " (id, payload) VALUES ($1, $2) " +
		"ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()"
	if _, err := s.pool.Exec(ctx, sql, id, data); err != nil {
		return fmt.Errorf("pgstore set %s: %w", id, err)
	}
	return nil
}

// Get retrieves the payload for id. Returns ErrMiss when no row exists.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, "SELECT payload FROM "+tableName+" WHERE id = $1", id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("pgstore get %s: %w", id, err)
	}
	return data, nil
}

// Exists reports whether a row exists for id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	var dummy int
	err := s.pool.QueryRow(ctx, "SELECT 1 FROM "+tableName+" WHERE id = $1 LIMIT 1", id).Scan(&dummy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("pgstore exists %s: %w", id, err)
	}
	return true, nil
}

// Delete removes the row for id. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM "+tableName+" WHERE id = $1", id); err != nil {
		return fmt.Errorf("pgstore delete %s: %w", id, err)
	}
	return nil
}

// List returns all archived ids, oldest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, "SELECT id FROM "+tableName+" ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("pgstore list: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("pgstore list scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the number of archived sequences.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+tableName).Scan(&n); err != nil {
		return 0, fmt.Errorf("pgstore count: %w", err)
	}
	return n, nil
}

// Ping verifies the pool is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Pool returns the underlying connection pool.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// Close shuts down the underlying connection pool.
func (s *Store) Close() { s.pool.Close() }
