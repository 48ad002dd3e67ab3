package config

import (
    "fmt"
    "time"

    "github.com/caarlos0/env/v11"
)

// RateLimitConfig drives the Redis token bucket applied to mutating routes.
type RateLimitConfig struct {
    Enabled        bool          `env:"ENABLED" envDefault:"true"`
    Capacity       int           `env:"CAPACITY" envDefault:"60"`
    RefillTokens   int           `env:"REFILL_TOKENS" envDefault:"1"`
    RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1s"`
    TTL            time.Duration `env:"TTL" envDefault:"10m"`
    KeyStrategy    string        `env:"KEY_STRATEGY" envDefault:"ip_route"`
    Prefix         string        `env:"PREFIX" envDefault:"rl"`
    Debug          bool          `env:"DEBUG" envDefault:"false"`
    Burst          int           `env:"BURST" envDefault:"-1"`
    RefillEvery    time.Duration `env:"REFILL_EVERY" envDefault:"0s"`
}

// LoadRateLimitConfig reads RATE_LIMIT_* variables and normalizes them.
func LoadRateLimitConfig() (RateLimitConfig, error) {
    var cfg RateLimitConfig
    if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RATE_LIMIT_"}); err != nil {
        return RateLimitConfig{}, fmt.Errorf("parse rate limit env: %w", err)
    }
    return cfg.normalize(), nil
}

func (c RateLimitConfig) normalize() RateLimitConfig {
    if c.Burst > 0 {
        c.Capacity = c.Burst
    }
    if c.RefillEvery > 0 {
        c.RefillTokens = 1
        c.RefillInterval = c.RefillEvery
    }
    if c.Capacity < 1 {
        c.Capacity = 1
    }
    if c.RefillTokens < 1 {
        c.RefillTokens = 1
    }
    if c.RefillInterval <= 0 {
        c.RefillInterval = time.Second
    }
    // a bucket must outlive a few refills or it resets to full capacity
    if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
        c.TTL = minTTL
    }
    return c
}
