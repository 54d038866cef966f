package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("addr", func(t *testing.T) {
		client, err := Connect(context.Background(), Options{Addr: mr.Addr()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer client.Close()
	})

	t.Run("url", func(t *testing.T) {
		client, err := Connect(context.Background(), Options{URL: "redis://" + mr.Addr() + "/0", Addr: "ignored:1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer client.Close()
	})

	t.Run("bad url", func(t *testing.T) {
		if _, err := Connect(context.Background(), Options{URL: "http://nope"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no address", func(t *testing.T) {
		if _, err := NewClient(Options{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		addr := mr.Addr()
		mr.Close()
		if _, err := Connect(context.Background(), Options{Addr: addr}); err == nil {
			t.Fatal("expected ping error")
		}
	})
}
