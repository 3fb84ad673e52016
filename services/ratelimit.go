package services

import (
	"errors"
	"log"
	"time"

	"vote-monitor-api/config"
	"vote-monitor-api/models"
	"vote-monitor-api/monitor"

	"gorm.io/gorm"
)

// RateLimitResult is the outcome of one admission check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	FailedOpen bool
}

// RateLimiterService enforces a sliding submission window per hashed
// identity, backed by the rate_limits table. Enforcement is approximate
// under concurrent requests from the same identity; the read-then-write
// update is not locked and may overshoot the limit by one under a race.
type RateLimiterService struct {
	db     *gorm.DB
	window time.Duration
	max    int
	now    func() time.Time
}

// NewRateLimiterService builds a limiter over the given database handle.
func NewRateLimiterService(db *gorm.DB, settings config.RateLimitSettings) *RateLimiterService {
	return &RateLimiterService{
		db:     db,
		window: settings.Window,
		max:    settings.MaxRequests,
		now:    time.Now,
	}
}

// Check records one attempt for the hashed identity and decides whether it
// is admitted. If the store is unreachable the check fails open: the
// request is allowed, the anomaly is counted and logged.
func (s *RateLimiterService) Check(ipHash string) RateLimitResult {
	now := s.now()
	windowStart := now.Add(-s.window)

	// Purge expired windows before checking; this keeps the table bounded
	// without a separate sweep process.
	if err := s.db.Where("window_start < ?", windowStart).
		Delete(&models.RateLimit{}).Error; err != nil {
		return s.failOpen(err)
	}

	var record models.RateLimit
	err := s.db.Where("ip_hash = ? AND window_start >= ?", ipHash, windowStart).
		Order("window_start DESC").
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.RateLimit{
			IPHash:       ipHash,
			RequestCount: 1,
			WindowStart:  now,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return s.failOpen(err)
		}
		return RateLimitResult{Allowed: true, Remaining: s.max - 1}
	}
	if err != nil {
		return s.failOpen(err)
	}

	if record.RequestCount >= s.max {
		return RateLimitResult{
			Allowed:   false,
			Remaining: 0,
			ResetTime: record.WindowStart.Add(s.window),
		}
	}

	if err := s.db.Model(&models.RateLimit{}).
		Where("rate_limit_id = ?", record.RateLimitID).
		Update("request_count", gorm.Expr("request_count + 1")).Error; err != nil {
		return s.failOpen(err)
	}

	return RateLimitResult{Allowed: true, Remaining: s.max - record.RequestCount - 1}
}

// Limit returns the configured window maximum.
func (s *RateLimiterService) Limit() int {
	return s.max
}

func (s *RateLimiterService) failOpen(err error) RateLimitResult {
	log.Printf("Rate limit check error, failing open: %v", err)
	monitor.RateLimitFailOpen.Inc()
	return RateLimitResult{Allowed: true, Remaining: 0, FailedOpen: true}
}
