// Package ratelimit implements per-client token bucket rate limiting with
// endpoint-specific tiers for the interview API.
package ratelimit

import (
	"sync"
	"time"
)

// bucketIdleTimeout is how long a bucket may sit unused before cleanup
// removes it.
const bucketIdleTimeout = time.Hour

// tokenBucket refills at a steady rate up to a burst capacity. lastAccess
// lets the limiter drop buckets for clients that went away.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// take refills, then consumes one token if available. It reports the tokens
// left, when the bucket is full again, and how long until the next token
// when the request was denied.
func (b *tokenBucket) take() (allowed bool, remaining int, reset time.Time, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(b.capacity), b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	} else if b.refillRate > 0 {
		retryAfter = time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < float64(b.capacity) && b.refillRate > 0 {
		deficit := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	return allowed, remaining, reset, retryAfter
}

// idleBefore reports whether the bucket was last used before cutoff.
func (b *tokenBucket) idleBefore(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAccess.Before(cutoff)
}

// Info describes the rate limit decision for one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings. Endpoint tiers override the default
// limit; whitelisted clients bypass limiting and blacklisted clients are
// always refused.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client+endpoint+method.
type Limiter struct {
	config *Config

	mu      sync.RWMutex
	buckets map[string]*tokenBucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter builds a limiter. A nil config enables limiting with the
// package defaults and no endpoint tiers.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether a request from clientID to the given path and method
// may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpoint := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if endpoint.Limit <= 0 {
		// Unlimited tier.
		return true, Info{Allowed: true}
	}

	bucket := l.bucket(clientID+":"+method+":"+path, endpoint)
	allowed, remaining, reset, retryAfter := bucket.take()

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpoint.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

// bucket returns the bucket for key, creating it on first use.
func (l *Limiter) bucket(key string, endpoint *EndpointConfig) *tokenBucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := endpoint.Burst
	if capacity <= 0 {
		capacity = endpoint.Limit
	}
	refillRate := float64(endpoint.Limit) / endpoint.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	b = newTokenBucket(capacity, refillRate)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdleBuckets drops buckets untouched for bucketIdleTimeout.
func (l *Limiter) removeIdleBuckets() {
	cutoff := time.Now().Add(-bucketIdleTimeout)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleBefore(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine. Call once when shutting down.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
