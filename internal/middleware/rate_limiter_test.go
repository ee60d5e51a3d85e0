package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowUser(t *testing.T) {
	rl := NewRateLimiter(3, 100, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.AllowUser(1) {
			t.Fatalf("request %d blocked, want allowed", i+1)
		}
	}

	if rl.AllowUser(1) {
		t.Error("request over the limit was allowed")
	}

	// Other users have their own window.
	if !rl.AllowUser(2) {
		t.Error("unrelated user was blocked")
	}
}

func TestRateLimiter_AllowIP(t *testing.T) {
	rl := NewRateLimiter(100, 2, time.Minute)

	if !rl.AllowIP("10.0.0.1") || !rl.AllowIP("10.0.0.1") {
		t.Fatal("requests within the limit were blocked")
	}
	if rl.AllowIP("10.0.0.1") {
		t.Error("request over the limit was allowed")
	}
	if !rl.AllowIP("10.0.0.2") {
		t.Error("unrelated address was blocked")
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 1, 10*time.Millisecond)

	if !rl.AllowUser(1) {
		t.Fatal("first request blocked")
	}
	if rl.AllowUser(1) {
		t.Fatal("second request in the same window allowed")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.AllowUser(1) {
		t.Error("request after window expiry was blocked")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	rl.AllowUser(1)
	rl.AllowIP("10.0.0.1")
	rl.Reset()

	if !rl.AllowUser(1) {
		t.Error("user still limited after Reset")
	}
	if !rl.AllowIP("10.0.0.1") {
		t.Error("address still limited after Reset")
	}
}
