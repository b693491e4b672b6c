package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// RateLimiter throttles request rates per key. Used on the login endpoint
// to slow down credential stuffing.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// NoopRateLimiter allows everything. Used when redis is disabled.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) { return true, nil }

func (NoopRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) { return 0, nil }

func (NoopRateLimiter) Reset(key string) error { return nil }
