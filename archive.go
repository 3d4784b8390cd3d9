// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// archive.go — optional tiered storage for sealed sequences: in-memory
// with TTL, Redis, and PostgreSQL, with read-through and backfill. The
// capture/replay core never touches the archive; this is retention
// infrastructure layered on top of it.

package tape

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/tape/internal/clock"
	"github.com/AndrewDonelson/tape/internal/codec"
	"github.com/AndrewDonelson/tape/internal/memstore"
	"github.com/AndrewDonelson/tape/internal/metrics"
	"github.com/AndrewDonelson/tape/internal/pgstore"
	"github.com/AndrewDonelson/tape/internal/redistore"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Re-export so callers only import this package.
type Codec = codec.Codec
type MetricsRecorder = metrics.MetricsRecorder

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// ArchiveConfig contains all Archive configuration. The Redis and Postgres
// tiers are optional: an empty address or DSN leaves that tier off.
type ArchiveConfig struct {
	// DSNs
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// TTLs (0 = keep until deleted)
	MemTTL   time.Duration
	RedisTTL time.Duration

	// Optional overrideable components
	Codec   codec.Codec
	Clock   clock.Clock
	Metrics metrics.MetricsRecorder
	Logger  Logger

	// Encryption key (must be 32 bytes for AES-256-GCM; nil = disabled).
	EncryptionKey []byte
}

func (c *ArchiveConfig) defaults() {
	if c.Codec == nil {
		c.Codec = codec.Default
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Archive
// ────────────────────────────────────────────────────────────────────────────

// Archive stores sealed sequences by id across up to three tiers, reading
// through memory → Redis → Postgres and backfilling the faster tiers on a
// hit below them. Only sealed sequences may be archived; the building
// phase belongs exclusively to a capture pass.
type Archive struct {
	cfg       ArchiveConfig
	mem       *memstore.Store
	rd        *redistore.Store
	pg        *pgstore.Store
	codec     codec.Codec
	encryptor Encryptor
	metrics   metrics.MetricsRecorder
	logger    Logger
	closed    atomic.Bool
}

// NewArchive creates and initialises an Archive from the provided config.
func NewArchive(ctx context.Context, cfg ArchiveConfig) (*Archive, error) {
	cfg.defaults()

	a := &Archive{
		cfg:     cfg,
		codec:   cfg.Codec,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}

	// Encryption
	if len(cfg.EncryptionKey) > 0 {
		enc, err := NewAES256GCM(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: encryption init: %v", ErrInvalidConfig, err)
		}
		a.encryptor = enc
	}

	// Memory tier (always on)
	a.mem = memstore.New(memstore.Options{
		TTL:   cfg.MemTTL,
		Clock: cfg.Clock,
	})

	// Redis tier
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.rd = redistore.New(redistore.Options{Client: client})
	}

	// Postgres tier
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			a.shutdownTiers()
			return nil, fmt.Errorf("%w: postgres pool: %v", ErrInvalidConfig, err)
		}
		a.pg = pgstore.New(pool)
		if err := a.pg.EnsureSchema(ctx); err != nil {
			a.shutdownTiers()
			a.pg.Close()
			return nil, err
		}
	}

	return a, nil
}

// Put archives a sealed sequence under id, writing through every active
// tier. Fails with ErrNotSealed for a sequence still building.
func (a *Archive) Put(ctx context.Context, id string, seq *Sequence) error {
	if a.closed.Load() {
		return ErrClosed
	}
	if id == "" || seq == nil {
		return ErrArgumentInvalid
	}
	start := time.Now()

	payload, err := a.encode(seq)
	if err != nil {
		a.metrics.RecordError("put")
		return err
	}

	a.mem.Set(id, payload, 0)
	if a.rd != nil {
		if err := a.rd.Set(ctx, id, payload, a.cfg.RedisTTL); err != nil {
			a.metrics.RecordError("put")
			return err
		}
	}
	if a.pg != nil {
		if err := a.pg.Set(ctx, id, payload); err != nil {
			a.metrics.RecordError("put")
			return err
		}
	}
	a.metrics.RecordLatency("put", time.Since(start))
	a.logger.Debug("sequence archived", "id", id, "values", seq.Len(), "bytes", len(payload))
	return nil
}

// Get retrieves an archived sequence by id, reading through the tiers and
// backfilling the faster ones on a lower-tier hit. Fails with ErrNotFound
// when no tier holds id.
func (a *Archive) Get(ctx context.Context, id string) (*Sequence, error) {
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if id == "" {
		return nil, ErrArgumentInvalid
	}
	start := time.Now()
	defer func() { a.metrics.RecordLatency("get", time.Since(start)) }()

	if payload, ok := a.mem.Get(id); ok {
		a.metrics.RecordHit("mem")
		return a.decode(payload)
	}
	a.metrics.RecordMiss("mem")

	if a.rd != nil {
		payload, err := a.rd.Get(ctx, id)
		switch {
		case err == nil:
			a.metrics.RecordHit("redis")
			a.mem.Set(id, payload, 0)
			return a.decode(payload)
		case errors.Is(err, redistore.ErrMiss):
			a.metrics.RecordMiss("redis")
		default:
			a.metrics.RecordError("get")
			return nil, err
		}
	}

	if a.pg != nil {
		payload, err := a.pg.Get(ctx, id)
		switch {
		case err == nil:
			a.metrics.RecordHit("pg")
			a.mem.Set(id, payload, 0)
			if a.rd != nil {
				if err := a.rd.Set(ctx, id, payload, a.cfg.RedisTTL); err != nil {
					a.logger.Warn("redis backfill failed", "id", id, "err", err)
				}
			}
			return a.decode(payload)
		case errors.Is(err, pgstore.ErrMiss):
			a.metrics.RecordMiss("pg")
		default:
			a.metrics.RecordError("get")
			return nil, err
		}
	}

	return nil, ErrNotFound
}

// Exists reports whether any tier holds id.
func (a *Archive) Exists(ctx context.Context, id string) (bool, error) {
	if a.closed.Load() {
		return false, ErrClosed
	}
	if _, ok := a.mem.Get(id); ok {
		return true, nil
	}
	if a.rd != nil {
		ok, err := a.rd.Exists(ctx, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	if a.pg != nil {
		return a.pg.Exists(ctx, id)
	}
	return false, nil
}

// Delete removes id from every active tier. Deleting an unknown id is not
// an error.
func (a *Archive) Delete(ctx context.Context, id string) error {
	if a.closed.Load() {
		return ErrClosed
	}
	a.mem.Delete(id)
	if a.rd != nil {
		if err := a.rd.Delete(ctx, id); err != nil {
			return err
		}
	}
	if a.pg != nil {
		return a.pg.Delete(ctx, id)
	}
	return nil
}

// List returns archived ids from the Postgres tier, which is the only one
// with a durable inventory. Without a Postgres tier it fails with
// ErrUnsupported.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if a.pg == nil {
		return nil, ErrUnsupported
	}
	return a.pg.List(ctx)
}

// Close gracefully shuts down all tiers. Idempotent.
func (a *Archive) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	a.shutdownTiers()
	if a.pg != nil {
		a.pg.Close()
	}
	return nil
}

func (a *Archive) shutdownTiers() {
	if a.mem != nil {
		a.mem.Close()
	}
	if a.rd != nil {
		if err := a.rd.Close(); err != nil {
			a.logger.Warn("redis close failed", "err", err)
		}
	}
}

func (a *Archive) encode(seq *Sequence) ([]byte, error) {
	payload, err := encodeSequence(seq, a.codec)
	if err != nil {
		return nil, err
	}
	if a.encryptor != nil {
		payload, err = a.encryptor.Encrypt(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	}
	return payload, nil
}

func (a *Archive) decode(payload []byte) (*Sequence, error) {
	if a.encryptor != nil {
		plain, err := a.encryptor.Decrypt(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
		payload = plain
	}
	return decodeSequence(payload, a.codec)
}
