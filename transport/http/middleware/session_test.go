package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/infras/otel/mocks"
	cacheMocks "hotelboard/shared/cache/mocks"
	"hotelboard/shared/constant"
	"hotelboard/transport/http/middleware"
)

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redis), redis
}

func TestSession(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		query    string
		wantTZ   string
		wantCode int
	}{
		{name: "header", header: "America/Bogota", wantTZ: "America/Bogota", wantCode: http.StatusOK},
		{name: "query", query: "Europe/Madrid", wantTZ: "Europe/Madrid", wantCode: http.StatusOK},
		{name: "header wins over query", header: "UTC", query: "Europe/Madrid", wantTZ: "UTC", wantCode: http.StatusOK},
		{name: "absent", wantTZ: "", wantCode: http.StatusOK},
		{name: "unknown zone", header: "Mars/Olympus_Mons", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMiddleware(t, &config.Config{})

			var gotTZ string

			handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTZ, _ = r.Context().Value(constant.ContextKeyTimezone).(string)
				w.WriteHeader(http.StatusOK)
			}))

			target := "/v1/summaries"
			if tt.query != "" {
				target += "?tz=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderTimezone, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantTZ, gotTZ)
		})
	}
}

func TestAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
	}{
		{name: "disabled", wantCode: http.StatusNoContent},
		{name: "matching key", configured: "secret", header: "secret", wantCode: http.StatusNoContent},
		{name: "missing key", configured: "secret", wantCode: http.StatusForbidden},
		{name: "prefix of key", configured: "secret", header: "secr", wantCode: http.StatusForbidden},
		{name: "key with suffix", configured: "secret", header: "secret!", wantCode: http.StatusForbidden},
		{name: "same length wrong key", configured: "secret", header: "secreT", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			m, _ := newMiddleware(t, cfg)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			m.APIKey(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
