// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// redistore.go — Redis-backed archive tier: byte payloads keyed by id
// under a fixed prefix, with the ErrMiss sentinel that drives clean tier
// fallthrough in the archive.

// Package redistore provides the Redis archive tier adapter.
package redistore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key does not exist in Redis. Callers
// use errors.Is(err, redistore.ErrMiss) to distinguish a miss from a
// genuine Redis error.
var ErrMiss = errors.New("redistore: miss")

// defaultKeyPrefix namespaces archive keys away from other users of the
// same Redis database.
const defaultKeyPrefix = "tape"

// Store is the Redis archive tier adapter.
type Store struct {
	client    redis.UniversalClient
	keyPrefix string
}

// Options configures a new Store.
type Options struct {
	Client    redis.UniversalClient
	KeyPrefix string
}

// New creates a new Redis tier Store.
func New(opts Options) *Store {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &Store{client: opts.Client, keyPrefix: prefix}
}

// key returns the Redis key for id. String concatenation rather than
// fmt.Sprintf, same as every other key builder in this module.
func (s *Store) key(id string) string {
	return s.keyPrefix + ":seq:" + id
}

// Set stores an encoded payload under id with the given TTL (0 = no
// expiry).
func (s *Store) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	k := s.key(id)
	if err := s.client.Set(ctx, k, data, ttl).Err(); err != nil {
		return fmt.Errorf("redistore set %s: %w", k, err)
	}
	return nil
}

// Get retrieves the payload for id. Returns ErrMiss when the key is
// absent.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	k := s.key(id)
	b, err := s.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redistore get %s: %w", k, err)
	}
	return b, nil
}

// Exists reports whether id is present.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redistore exists: %w", err)
	}
	return n > 0, nil
}

// Delete removes id. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redistore delete: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
