package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"reservation-agent/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RequestID(), mw.AccessLog())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatal("expected generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if w.Body.String() != "abc-123" {
			t.Errorf("expected propagated id, got %q", w.Body.String())
		}
	})
}

func TestCORS(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3002"}})
	r := newEngine(mw, mw.CORS())

	t.Run("allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3002")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3002" {
			t.Errorf("unexpected allow-origin %q", got)
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("expected credentials to be allowed")
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("unexpected allow-origin %q", got)
		}
	})

	t.Run("no origin header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("preflight with custom header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "x-user-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("unexpected allow-origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "*") {
			t.Errorf("expected any request header to be allowed, got %q", got)
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost) {
			t.Errorf("expected POST in allow-methods, got %q", w.Header().Get("Access-Control-Allow-Methods"))
		}
	})
}

func TestCORS_NoOrigins(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.CORS())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if len(mw.AllowedOrigins()) != 0 {
		t.Errorf("unexpected origins %v", mw.AllowedOrigins())
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 6}) // burst 1
	r := newEngine(mw, mw.RateLimit())

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimiter_ConcurrentNewClient(t *testing.T) {
	rl := newRateLimiter(6) // burst 1, one token per 10s

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected exactly one request through a shared bucket, got %d", got)
	}
	if n := rl.limiters.Len(); n != 1 {
		t.Errorf("expected one bucket, got %d", n)
	}
}
