package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"reservation-agent/internal/agent/session"
)

const (
	defaultCapacity   = 10000
	defaultTTL        = 24 * time.Hour
	defaultMaxHistory = 20
)

// Options tunes the store. Zero values fall back to the defaults.
type Options struct {
	Capacity   int
	TTL        time.Duration
	MaxHistory int
}

// Store keeps history in process. Least recently used sessions are evicted
// when Capacity is reached and idle ones expire after TTL.
type Store struct {
	mu         sync.Mutex
	cache      *expirable.LRU[string, []session.Turn]
	maxHistory int
}

var _ session.Store = (*Store)(nil)

func New(opts Options) *Store {
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = defaultMaxHistory
	}
	return &Store{
		cache:      expirable.NewLRU[string, []session.Turn](opts.Capacity, nil, opts.TTL),
		maxHistory: opts.MaxHistory,
	}
}

func (s *Store) Load(_ context.Context, sessionID string) ([]session.Turn, error) {
	if sessionID == "" {
		return nil, session.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, _ := s.cache.Get(sessionID)
	out := make([]session.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *Store) Append(_ context.Context, sessionID string, turns ...session.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.cache.Get(sessionID)
	merged := make([]session.Turn, 0, len(existing)+len(turns))
	merged = append(merged, existing...)
	merged = append(merged, turns...)
	if len(merged) > s.maxHistory {
		merged = merged[len(merged)-s.maxHistory:]
	}
	s.cache.Add(sessionID, merged)
	return nil
}

func (s *Store) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(sessionID)
	return nil
}
