package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-agent/internal/agent/session"
	"reservation-agent/pkg/log"
)

func newStore(t *testing.T, opts Options) (session.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(log.NewNop(), client, opts), mr
}

func TestStore_AppendLoad(t *testing.T) {
	store, mr := newStore(t, Options{TTL: time.Hour})
	ctx := context.Background()

	turns, err := store.Load(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, turns)

	require.NoError(t, store.Append(ctx, "42",
		session.Turn{Role: session.RoleUser, Text: "7월 30일 오후 2시 예약"},
		session.Turn{Role: session.RoleAssistant, Text: "예약이 완료되었습니다."},
	))

	turns, err = store.Load(ctx, "42")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, session.RoleUser, turns[0].Role)
	assert.Equal(t, "예약이 완료되었습니다.", turns[1].Text)

	assert.True(t, mr.Exists("chat_history:42"))
	assert.Equal(t, time.Hour, mr.TTL("chat_history:42"))
}

func TestStore_TrimsToMaxHistory(t *testing.T) {
	store, _ := newStore(t, Options{MaxHistory: 3, KeyPrefix: "h:"})
	ctx := context.Background()

	for _, text := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, store.Append(ctx, "u", session.Turn{Role: session.RoleUser, Text: text}))
	}

	turns, err := store.Load(ctx, "u")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "3", turns[0].Text)
	assert.Equal(t, "5", turns[2].Text)
}

func TestStore_SkipsCorruptEntries(t *testing.T) {
	store, mr := newStore(t, Options{})
	ctx := context.Background()

	_, err := mr.Push("chat_history:9", "not json", `{"role":"user","text":"안녕"}`, `{"role":"system","text":"x"}`)
	require.NoError(t, err)

	turns, err := store.Load(ctx, "9")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "안녕", turns[0].Text)
}

func TestDecodeTurn(t *testing.T) {
	turn, err := decodeTurn(`{"role":"assistant","text":"네"}`)
	require.NoError(t, err)
	assert.Equal(t, session.Turn{Role: session.RoleAssistant, Text: "네"}, turn)

	for _, item := range []string{"not json", `{"role":"system","text":"x"}`, `{}`} {
		_, err := decodeTurn(item)
		assert.ErrorIs(t, err, session.ErrCorruptHistory, item)
	}
}

func TestStore_Clear(t *testing.T) {
	store, mr := newStore(t, Options{})
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "42", session.Turn{Role: session.RoleUser, Text: "hi"}))
	require.NoError(t, store.Clear(ctx, "42"))
	assert.False(t, mr.Exists("chat_history:42"))
}

func TestStore_Errors(t *testing.T) {
	store, mr := newStore(t, Options{})
	ctx := context.Background()

	_, err := store.Load(ctx, "")
	assert.ErrorIs(t, err, session.ErrEmptySessionID)

	mr.SetError("LOADING")
	_, err = store.Load(ctx, "42")
	assert.Error(t, err)
	assert.Error(t, store.Append(ctx, "42", session.Turn{Role: session.RoleUser, Text: "hi"}))
	assert.Error(t, store.Clear(ctx, "42"))
}
