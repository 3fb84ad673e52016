package services

import (
	"testing"
	"time"

	"vote-monitor-api/config"
	"vote-monitor-api/models"
	"vote-monitor-api/utils"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*RateLimiterService, *time.Time) {
	t.Helper()

	now := time.Now()
	limiter := NewRateLimiterService(newTestDB(t), config.RateLimitSettings{
		Window:      window,
		MaxRequests: max,
	})
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Hour)
	ipHash := utils.HashIdentity("203.0.113.7", "test-salt")

	for i := 0; i < 3; i++ {
		result := limiter.Check(ipHash)
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if result.Remaining != 3-i-1 {
			t.Fatalf("request %d: remaining = %d, want %d", i+1, result.Remaining, 3-i-1)
		}
	}

	result := limiter.Check(ipHash)
	if result.Allowed {
		t.Fatal("fourth request should be denied")
	}
	if result.ResetTime.IsZero() {
		t.Fatal("denial should carry the window reset time")
	}
}

func TestRateLimiterSeparateIdentities(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Hour)

	if result := limiter.Check("hash-a"); !result.Allowed {
		t.Fatal("first identity should be allowed")
	}
	if result := limiter.Check("hash-a"); result.Allowed {
		t.Fatal("first identity should now be denied")
	}
	if result := limiter.Check("hash-b"); !result.Allowed {
		t.Fatal("second identity should not share the first one's window")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter, now := newTestLimiter(t, 1, time.Hour)

	if result := limiter.Check("hash-a"); !result.Allowed {
		t.Fatal("first request should be allowed")
	}
	if result := limiter.Check("hash-a"); result.Allowed {
		t.Fatal("second request inside the window should be denied")
	}

	*now = now.Add(61 * time.Minute)
	if result := limiter.Check("hash-a"); !result.Allowed {
		t.Fatal("request after window expiry should be allowed")
	}

	// Expired rows are purged, not kept around
	var count int64
	if err := limiter.db.Model(&models.RateLimit{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 window record after purge, got %d", count)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Hour)

	sqlDB, err := limiter.db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.Close()

	result := limiter.Check("hash-a")
	if !result.Allowed {
		t.Fatal("check must fail open when the store is unreachable")
	}
	if !result.FailedOpen {
		t.Fatal("fail-open decisions must be marked as such")
	}
}
