package http_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelboard/config"
	"hotelboard/infras/otel/mocks"
	httpTransport "hotelboard/transport/http"
	"hotelboard/transport/http/middleware"
	"hotelboard/transport/http/router"
)

func TestHTTP_ServeHTTP_ReadyOnce(t *testing.T) {
	cfg := &config.Config{}
	otl := mocks.NewOtel()

	server := httpTransport.New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(otl, cfg, nil), otl, nil, nil)

	assert.Zero(t, server.State())

	var wg sync.WaitGroup

	codes := make([]int, 16)

	for i := range codes {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

			codes[i] = rec.Code
		}(i)
	}

	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusNotFound, code)
	}

	assert.Equal(t, httpTransport.ServerStateReady, server.State())
}
