package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/shared/cache"
	"hotelboard/shared/constant"
)

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
		req.Header.Set(constant.RequestHeaderUserAgent, "board")

		return req
	}

	t.Run("first request", func(t *testing.T) {
		m, redis := newMiddleware(t, cfg)

		redis.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:board", gomock.Any()).Return(fmt.Errorf("miss: %w", cache.Nil))
		redis.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:board", 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		m.RateLimit()(next).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		m, redis := newMiddleware(t, cfg)

		redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*int) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		m.RateLimit()(next).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		m, _ := newMiddleware(t, &config.Config{})

		rec := httptest.NewRecorder()
		m.RateLimit()(next).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
