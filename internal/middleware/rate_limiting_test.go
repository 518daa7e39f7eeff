package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	allowed int
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, f.err
	}
	return &redis_rate.Result{Allowed: f.allowed, RetryAfter: 2 * time.Second}, nil
}

func TestRateLimit(t *testing.T) {
	testCases := []struct {
		name         string
		limiter      *fakeLimiter
		method       string
		expectedCode int
		expectNext   bool
		limitedCount float64
	}{
		{name: "Allowed", limiter: &fakeLimiter{allowed: 1}, method: http.MethodPost, expectedCode: http.StatusOK, expectNext: true},
		{name: "Limited", limiter: &fakeLimiter{allowed: 0}, method: http.MethodPost, expectedCode: http.StatusTooManyRequests, limitedCount: 1},
		{name: "LimiterError", limiter: &fakeLimiter{err: errors.New("redis down")}, method: http.MethodPost, expectedCode: http.StatusInternalServerError},
		{name: "OptionsSkipsLimiter", limiter: &fakeLimiter{allowed: 0}, method: http.MethodOptions, expectedCode: http.StatusOK, expectNext: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.NewTestManager()
			nextCalled := false
			handler := RateLimit(tc.limiter, "auth", 10, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			req := httptest.NewRequest(tc.method, "/auth/login", nil)
			req.Header.Set("X-Real-Ip", "10.0.0.7")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
			assert.Equal(t, tc.limitedCount, testutil.ToFloat64(m.CounterRateLimitedRequests))
			if tc.method != http.MethodOptions {
				assert.Equal(t, []string{"auth||10.0.0.7"}, tc.limiter.keys)
			} else {
				assert.Empty(t, tc.limiter.keys)
			}
		})
	}
}
