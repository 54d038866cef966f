package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"reservation-agent/internal/agent/session"
	"reservation-agent/pkg/log"
)

const (
	defaultKeyPrefix  = "chat_history:"
	defaultMaxHistory = 20
)

// Options tunes the store. Zero values fall back to the defaults.
type Options struct {
	KeyPrefix  string
	TTL        time.Duration
	MaxHistory int
}

type implStore struct {
	l      log.Logger
	client goredis.Cmdable
	opts   Options
}

// New keeps each session as a Redis list of JSON turns under KeyPrefix+sessionID.
func New(l log.Logger, client goredis.Cmdable, opts Options) session.Store {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = defaultKeyPrefix
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = defaultMaxHistory
	}
	return &implStore{
		l:      l,
		client: client,
		opts:   opts,
	}
}

func (s *implStore) key(sessionID string) string {
	return s.opts.KeyPrefix + sessionID
}
