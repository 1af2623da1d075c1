package ratelimit

import (
	"errors"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(time.Second, 3)
	defer limiter.Close()

	// First 3 requests should succeed
	for i := 0; i < 3; i++ {
		if !limiter.Allow("test-key") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if limiter.Allow("test-key") {
		t.Error("4th request should be blocked")
	}

	time.Sleep(1100 * time.Millisecond)

	if !limiter.Allow("test-key") {
		t.Error("Request after window expiry should be allowed")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(time.Hour, 0)
	defer limiter.Close()

	for i := 0; i < 100; i++ {
		if !limiter.Allow("k") {
			t.Fatalf("disabled limiter blocked request %d", i+1)
		}
	}
}

func TestMultiKeyLimiter_CheckApplication(t *testing.T) {
	limiter := NewMultiKeyLimiter(&Config{ApplicationsPerHour: 2})
	defer limiter.Close()

	if err := limiter.CheckApplication("192.168.1.1"); err != nil {
		t.Errorf("First application should succeed: %v", err)
	}
	if err := limiter.CheckApplication("192.168.1.1"); err != nil {
		t.Errorf("Second application should succeed: %v", err)
	}
	if err := limiter.CheckApplication("192.168.1.1"); !errors.Is(err, ErrLimited) {
		t.Errorf("3rd application from same IP should be limited, got %v", err)
	}
	if err := limiter.CheckApplication("192.168.1.2"); err != nil {
		t.Errorf("Application from different IP should succeed: %v", err)
	}
}

func TestMultiKeyLimiter_CheckSignIn(t *testing.T) {
	limiter := NewMultiKeyLimiter(&Config{SignInsPerHour: 1})
	defer limiter.Close()

	if err := limiter.CheckSignIn("10.0.0.1", "a@example.com"); err != nil {
		t.Errorf("First sign in should succeed: %v", err)
	}
	// new IP, same email
	if err := limiter.CheckSignIn("10.0.0.2", "a@example.com"); err == nil {
		t.Error("Second sign in for the same email should be limited")
	}
}
