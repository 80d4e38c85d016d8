package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/gateway/breaker"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestGatewayProxiesToResolvedInstance(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":"from product"}`))
	}))
	defer backend.Close()

	backendURL, err := url.Parse(backend.URL)
	require.NoError(t, err)

	resolver := registry.NewStaticResolver(map[string][]string{
		"product": {backendURL.Host},
	})
	router := SetupRouter(DefaultRoutes(), resolver, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "from product")
}

func TestGatewayFallbackWhenServiceUnknown(t *testing.T) {
	resolver := registry.NewStaticResolver(map[string][]string{})
	router := SetupRouter(DefaultRoutes(), resolver, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Order service is unavailable")
}

func TestGatewayBreakerOpensOnRepeatedFailure(t *testing.T) {
	// 指向沒人監聽的位址，代理請求必定失敗
	resolver := registry.NewStaticResolver(map[string][]string{
		"user": {"127.0.0.1:1"},
	})
	cfg := &breaker.BreakerConfig{FailureThreshold: 2, OpenTimeout: time.Minute}

	b := breaker.NewBreaker(cfg)
	proxy := NewServiceProxy("user", resolver, b, fallbackHandler("User"), testLogger())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}

	assert.Equal(t, breaker.StateOpen, b.State())

	// 斷路器打開後直接回fallback，不再嘗試代理
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
