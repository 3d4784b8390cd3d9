// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// session.go — drives one capture pass against one producer and returns
// the sealed sequence, and the symmetric replay pass over an existing one.

package tape

import (
	"time"

	"github.com/AndrewDonelson/tape/internal/metrics"
	"github.com/google/uuid"
)

// Saver is the external producer's serialization routine: invoked once
// with a write adapter, it emits the producer's state as a series of typed
// write calls. The core never inspects the call ordering the producer
// chooses.
type Saver interface {
	SaveState(w *Capture) error
}

// Loader is the mirrored restore routine, driven with a read adapter over
// a sealed sequence.
type Loader interface {
	LoadState(r *Replay) error
}

// SessionConfig configures a Session. Zero value is usable: noop logger
// and metrics.
type SessionConfig struct {
	Logger  Logger
	Metrics metrics.MetricsRecorder
}

func (c *SessionConfig) defaults() {
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
}

// Session drives capture and replay passes. A session is synchronous and
// single-threaded; each capture pass builds exactly one sequence, which is
// never reused across producers. Ownership of the sealed sequence passes
// to the caller on return.
type Session struct {
	id      uuid.UUID
	logger  Logger
	metrics metrics.MetricsRecorder
}

// NewSession creates a session with a fresh identity.
func NewSession(cfg SessionConfig) *Session {
	cfg.defaults()
	return &Session{
		id:      uuid.New(),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// ID returns the session's unique identity, usable as an archive key.
func (s *Session) ID() uuid.UUID { return s.id }

// Capture runs one producer write-pass: a new mutable sequence is bound to
// a write adapter, p.SaveState drives its typed write calls, and the
// sequence is sealed and returned. On producer error the partial sequence
// is discarded and the error surfaced.
func (s *Session) Capture(p Saver) (*Sequence, error) {
	if p == nil {
		return nil, ErrArgumentInvalid
	}
	start := time.Now()
	seq := NewSequence()
	w, err := NewCapture(seq)
	if err != nil {
		return nil, err
	}
	if err := p.SaveState(w); err != nil {
		s.metrics.RecordError("capture")
		s.logger.Error("capture pass failed", "session", s.id.String(), "err", err)
		return nil, err
	}
	seq.Seal()
	s.metrics.RecordLatency("capture", time.Since(start))
	s.logger.Debug("capture pass complete", "session", s.id.String(), "values", seq.Len())
	return seq, nil
}

// Replay runs one producer read-pass over a sealed sequence. Each call
// binds a fresh independent cursor, so concurrent replays of the same
// sequence never share read state.
func (s *Session) Replay(seq *Sequence, p Loader) error {
	if seq == nil || p == nil {
		return ErrArgumentInvalid
	}
	cur, err := seq.NewCursor()
	if err != nil {
		return err
	}
	r, err := NewReplay(cur)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := p.LoadState(r); err != nil {
		s.metrics.RecordError("replay")
		s.logger.Error("replay pass failed", "session", s.id.String(), "position", cur.Position(), "err", err)
		return err
	}
	s.metrics.RecordLatency("replay", time.Since(start))
	return nil
}
