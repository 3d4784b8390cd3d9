// Package memstore provides the in-memory archive tier: encoded sequence
// payloads keyed by id, with optional TTL expiry.
package memstore

import (
	"sync"
	"time"

	"github.com/AndrewDonelson/tape/internal/clock"
)

// Options configures a memstore Store.
type Options struct {
	TTL           time.Duration
	SweepInterval time.Duration
	Clock         clock.Clock
}

// entry holds one archived payload and its expiry.
type entry struct {
	data      []byte
	expiresAt time.Time
}

// Store is the in-memory archive tier. Archived payloads are few and
// large, so a single map under one mutex is enough; there is no eviction
// beyond TTL expiry.
type Store struct {
	mu     sync.RWMutex
	items  map[string]entry
	opts   Options
	clock  clock.Clock
	stopCh chan struct{}
	once   sync.Once
}

// New creates a new memory tier Store.
func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.SweepInterval == 0 {
		opts.SweepInterval = time.Minute
	}
	s := &Store{
		items:  make(map[string]entry),
		opts:   opts,
		clock:  opts.Clock,
		stopCh: make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Set stores data under id. ttl == 0 falls back to the store default;
// a default of 0 means no expiry.
func (s *Store) Set(id string, data []byte, ttl time.Duration) {
	if ttl == 0 {
		ttl = s.opts.TTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	s.items[id] = entry{data: data, expiresAt: expiresAt}
	s.mu.Unlock()
}

// Get retrieves the payload for id. Expired entries are removed on access.
func (s *Store) Get(id string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.clock.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, false
	}
	return e.data, true
}

// Delete removes id from the store.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Flush removes all entries.
func (s *Store) Flush() {
	s.mu.Lock()
	s.items = make(map[string]entry)
	s.mu.Unlock()
}

// Len returns the number of live entries, expired ones included until the
// next sweep touches them.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close stops the background sweeper. Idempotent.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *Store) sweepLoop() {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) sweep() {
	now := s.clock.Now()
	s.mu.Lock()
	for id, e := range s.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.items, id)
		}
	}
	s.mu.Unlock()
}
