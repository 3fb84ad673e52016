package models

import "time"

// RateLimit tracks the sliding submission window for one hashed identity.
// Rows are created on the first request of a window and purged lazily once
// the window expires.
type RateLimit struct {
	RateLimitID  int       `gorm:"primaryKey;column:rate_limit_id" json:"rate_limit_id"`
	IPHash       string    `gorm:"column:ip_hash;index" json:"-"`
	RequestCount int       `gorm:"column:request_count" json:"request_count"`
	WindowStart  time.Time `gorm:"column:window_start;index" json:"window_start"`
}

// TableName overrides
func (RateLimit) TableName() string {
	return "rate_limits"
}
