// Package ratelimit implements a fixed-window request limiter whose counters
// live in valkey, so every API instance shares the same budget.
package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/internal/metrics"
	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/card-bridge/pkg/app/http"
	"github.com/chainsafe/card-bridge/pkg/config"
)

const counterTimeout = 500 * time.Millisecond

// Counter increments a key that expires after ttl and returns the new count.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Limiter allows Requests per Window for each client and route.
type Limiter struct {
	counter  Counter
	requests int64
	window   time.Duration
	prefix   string
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a limiter from cfg backed by counter
func New(counter Counter, cfg config.RateLimitConfig, logger *zap.Logger) *Limiter {
	return &Limiter{
		counter:  counter,
		requests: cfg.Requests,
		window:   cfg.Window,
		prefix:   cfg.KeyPrefix,
		now:      time.Now,
		logger:   logger,
	}
}

// Allow counts one request of client on route and reports whether it is
// within budget, plus the time until the current window resets.
func (l *Limiter) Allow(ctx context.Context, route, client string) (bool, time.Duration, error) {
	now := l.now()
	bucket := now.Truncate(l.window)
	key := fmt.Sprintf("%s:%s:%s:%d", l.prefix, route, client, bucket.Unix())

	ctx, cancel := context.WithTimeout(ctx, counterTimeout)
	defer cancel()

	// keys are per window, the ttl only has to outlive it
	count, err := l.counter.Incr(ctx, key, 2*l.window)
	if err != nil {
		return true, 0, err
	}
	return count <= l.requests, bucket.Add(l.window).Sub(now), nil
}

// Middleware rejects requests over budget with 429. When the counter store
// is unavailable requests are let through.
func (l *Limiter) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter, err := l.Allow(r.Context(), route, clientIP(r))
			if err != nil {
				l.logger.Warn("rate limit check failed, allowing request",
					zap.String("route", route),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				metrics.RateLimited.WithLabelValues(route).Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				apphttp.DefaultErrorHandler(w, apperrors.TooManyRequestsError(nil, "too many requests, please try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
