// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/forewind/internal/config"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLimiter(t *testing.T, capacity int, window time.Duration) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(capacity, window)
	limiter.now = clock.now
	t.Cleanup(limiter.Stop)
	return limiter, clock
}

func TestAllowRefillsOverTime(t *testing.T) {
	limiter, clock := newTestLimiter(t, 2, time.Minute)

	steps := []struct {
		advance time.Duration
		allowed bool
	}{
		{0, true},
		{0, true},
		{0, false},
		{10 * time.Second, false}, // a third of a token
		{30 * time.Second, true},  // over one token after 40s at 2/min
		{0, false},
		{time.Hour, true}, // refill caps at capacity
		{0, true},
		{0, false},
	}

	for i, step := range steps {
		clock.advance(step.advance)
		allowed, _, _ := limiter.Allow("10.0.0.1")
		if allowed != step.allowed {
			t.Errorf("step %d: allowed = %v, want %v", i, allowed, step.allowed)
		}
	}
}

func TestAllowRetryAfter(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	limiter.Allow("10.0.0.1")
	allowed, remaining, retryAfter := limiter.Allow("10.0.0.1")
	if allowed || remaining != 0 {
		t.Fatalf("second request should be refused, got allowed=%v remaining=%d", allowed, remaining)
	}
	if retryAfter.Round(time.Second) != time.Minute {
		t.Errorf("retryAfter = %s, want 1m", retryAfter)
	}
}

func TestAllowPerClient(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	if ok, _, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("first client should be allowed")
	}
	if ok, _, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Error("second client has its own bucket")
	}
}

func TestEvictIdle(t *testing.T) {
	limiter, clock := newTestLimiter(t, 1, time.Minute)

	limiter.Allow("10.0.0.1")
	clock.advance(idleTimeout + time.Second)
	limiter.evictIdle()

	if n := len(limiter.buckets); n != 0 {
		t.Errorf("idle bucket should be evicted, %d left", n)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, _ := newTestLimiter(t, 2, time.Minute)

	r := gin.New()
	r.Use(RateLimitMiddleware(limiter, "/api/"))
	r.POST("/api/expand", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	tests := []struct {
		method, path string
		want         int
		remaining    string
	}{
		{"POST", "/api/expand", http.StatusOK, "1"},
		{"POST", "/api/expand", http.StatusOK, "0"},
		{"POST", "/api/expand", http.StatusTooManyRequests, "0"},
		{"GET", "/health", http.StatusOK, ""},
	}

	for i, tt := range tests {
		w := send(tt.method, tt.path)
		if w.Code != tt.want {
			t.Errorf("request %d: status = %d, want %d", i, w.Code, tt.want)
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != tt.remaining {
			t.Errorf("request %d: X-RateLimit-Remaining = %q, want %q", i, got, tt.remaining)
		}
		if w.Code == http.StatusTooManyRequests {
			if got := w.Header().Get("Retry-After"); got != "30" {
				t.Errorf("Retry-After = %q, want 30", got)
			}
			if got := w.Header().Get("X-RateLimit-Limit"); got != "2" {
				t.Errorf("X-RateLimit-Limit = %q, want 2", got)
			}
		}
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		behindProxy bool
		forwarded   string
		want        string
	}{
		{"remote address", false, "", "10.0.0.1"},
		{"forwarded ignored without proxy", false, "203.0.113.9", "10.0.0.1"},
		{"forwarded trusted behind proxy", true, "203.0.113.9, 10.0.0.1", "203.0.113.9"},
		{"no header behind proxy", true, "", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
				t.Fatalf("InitConfig failed: %v", err)
			}
			if err := config.Set("server.behind_proxy", tt.behindProxy); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = "10.0.0.1:1234"
			if tt.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
