package config

// Rate limit configuration
type RateLimitConfig struct {
	RequestsPerMinute int // Tokens refilled per minute for each client IP
	Burst             int // Burst capacity before requests are rejected
}

var DefaultRateLimitConfig = RateLimitConfig{
	RequestsPerMinute: 6000,
	Burst:             1000,
}
