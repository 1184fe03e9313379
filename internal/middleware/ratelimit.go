// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ratelimitKeyPrefix namespaces limiter counters in Valkey.
const ratelimitKeyPrefix = "ratelimit:contact:"

// ConnectValkey creates a Valkey (Redis-compatible) client and verifies the
// connection with a ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}

// RateLimiter limits requests per client IP using a fixed-window counter
// kept in Valkey, so the limit holds across server instances. A nil client
// disables the limiter entirely.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
// per client IP.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// allow checks and increments the counter for the given key. The limiter
// fails open: if Valkey is unreachable, requests pass through rather than
// blocking legitimate visitors.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.client == nil {
		return true
	}

	counterKey := ratelimitKeyPrefix + key
	count, err := rl.client.Incr(ctx, counterKey).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}

	// First hit in this window starts the expiry clock.
	if count == 1 {
		if err := rl.client.Expire(ctx, counterKey, rl.window).Err(); err != nil {
			slog.Warn("rate limiter expire failed", "key", key, "error", err)
		}
	}

	return count <= int64(rl.limit)
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(r.Context(), ip) {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For first (may contain multiple IPs).
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first (leftmost) IP — the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port).
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
