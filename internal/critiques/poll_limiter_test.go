package critiques

import (
	"testing"
	"time"
)

func TestPollLimiterWindow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := newPollLimiter(time.Second, func() time.Time { return now })

	if !limiter.Allow("user-1", "critique-1") {
		t.Fatalf("first poll should pass")
	}
	if limiter.Allow("user-1", "critique-1") {
		t.Fatalf("second poll inside window should be blocked")
	}
	if !limiter.Allow("user-1", "critique-2") {
		t.Fatalf("different critique should have its own window")
	}
	if !limiter.Allow("user-2", "critique-1") {
		t.Fatalf("different user should have its own window")
	}

	now = now.Add(1100 * time.Millisecond)
	if !limiter.Allow("user-1", "critique-1") {
		t.Fatalf("poll after window should pass")
	}
}

func TestPollLimiterRetryAfter(t *testing.T) {
	limiter := newPollLimiter(2*time.Second, nil)
	if got := limiter.RetryAfterSeconds(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	var nilLimiter *pollLimiter
	if !nilLimiter.Allow("u", "c") {
		t.Fatalf("nil limiter should always allow")
	}
}
