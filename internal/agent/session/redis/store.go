package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"reservation-agent/internal/agent/session"
)

func (s *implStore) Load(ctx context.Context, sessionID string) ([]session.Turn, error) {
	if sessionID == "" {
		return nil, session.ErrEmptySessionID
	}

	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		s.l.Errorf(ctx, "internal.agent.session.redis.Load: %v", err)
		return nil, fmt.Errorf("session: load %s: %w", sessionID, err)
	}

	turns := make([]session.Turn, 0, len(raw))
	for _, item := range raw {
		t, err := decodeTurn(item)
		if err != nil {
			s.l.Warnf(ctx, "internal.agent.session.redis.Load: skip entry: %v", err)
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// decodeTurn rejects entries that do not decode or carry an unknown role.
func decodeTurn(item string) (session.Turn, error) {
	var t session.Turn
	if err := json.Unmarshal([]byte(item), &t); err != nil {
		return session.Turn{}, fmt.Errorf("%w: %v", session.ErrCorruptHistory, err)
	}
	if t.Role != session.RoleUser && t.Role != session.RoleAssistant {
		return session.Turn{}, fmt.Errorf("%w: role %q", session.ErrCorruptHistory, t.Role)
	}
	return t, nil
}

func (s *implStore) Append(ctx context.Context, sessionID string, turns ...session.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("session: encode turn: %w", err)
		}
		values = append(values, b)
	}

	key := s.key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, int64(-s.opts.MaxHistory), -1)
		if s.opts.TTL > 0 {
			pipe.Expire(ctx, key, s.opts.TTL)
		}
		return nil
	})
	if err != nil {
		s.l.Errorf(ctx, "internal.agent.session.redis.Append: %v", err)
		return fmt.Errorf("session: append %s: %w", sessionID, err)
	}
	return nil
}

func (s *implStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		s.l.Errorf(ctx, "internal.agent.session.redis.Clear: %v", err)
		return fmt.Errorf("session: clear %s: %w", sessionID, err)
	}
	return nil
}
