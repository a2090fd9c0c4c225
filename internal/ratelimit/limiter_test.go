package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestNewLimiter(t *testing.T) {
	l := NewLimiter(10.0, 5)
	if l == nil {
		t.Fatal("NewLimiter returned nil")
	}
	if l.rate != 10.0 {
		t.Errorf("rate = %f, want 10.0", l.rate)
	}
	if l.burst != 5 {
		t.Errorf("burst = %d, want 5", l.burst)
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(1.0, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("key1") {
			t.Errorf("request %d should be allowed (within burst)", i+1)
		}
	}
}

func TestAllow_ExceedsBurst(t *testing.T) {
	l := NewLimiter(1.0, 2)

	l.Allow("key1")
	l.Allow("key1")

	if l.Allow("key1") {
		t.Error("request after burst exhaustion should be rejected")
	}
}

func TestAllow_RefillAfterWait(t *testing.T) {
	now := time.Now()
	l := NewLimiter(10.0, 2) // 10 tokens/sec
	l.nowFunc = func() time.Time { return now }

	l.Allow("key1")
	l.Allow("key1")

	if l.Allow("key1") {
		t.Error("expected rejection after burst")
	}

	// Advance time by 200ms => 10 * 0.2 = 2 tokens refilled
	now = now.Add(200 * time.Millisecond)
	if !l.Allow("key1") {
		t.Error("expected allow after refill")
	}
	if !l.Allow("key1") {
		t.Error("expected second allow after refill")
	}
	if l.Allow("key1") {
		t.Error("expected rejection after refilled tokens consumed")
	}
}

func TestAllow_IndependentKeys(t *testing.T) {
	l := NewLimiter(1.0, 1)

	if !l.Allow("analyze") {
		t.Error("first key should be allowed")
	}
	if !l.Allow("trial") {
		t.Error("second key should have its own bucket")
	}
	if l.Allow("analyze") {
		t.Error("first key should now be exhausted")
	}
}

func TestAllow_Concurrent(t *testing.T) {
	l := NewLimiter(1000.0, 100)

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	// Burst is 100; refill during the test may admit a few more, but
	// never all 200.
	if count < 100 || count >= 200 {
		t.Errorf("allowed %d of 200 concurrent requests, want >= 100 and < 200", count)
	}
}

func TestCheckLimit(t *testing.T) {
	limiters := ToolLimiters{
		"gridmeet_analyze": NewLimiter(1.0, 1),
	}

	if err := CheckLimit(limiters, "gridmeet_analyze"); err != nil {
		t.Errorf("first call should pass: %v", err)
	}
	if err := CheckLimit(limiters, "gridmeet_analyze"); err == nil {
		t.Error("second call should be rate limited")
	}
	if err := CheckLimit(limiters, "gridmeet_unknown"); err != nil {
		t.Errorf("unconfigured tool should always pass: %v", err)
	}
}

func TestNewToolLimiters(t *testing.T) {
	limiters := NewToolLimiters()

	for _, tool := range []string{"gridmeet_trial", "gridmeet_analyze", "gridmeet_theory"} {
		if _, ok := limiters[tool]; !ok {
			t.Errorf("missing limiter for %s", tool)
		}
	}
}
