package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKey_NoKeyConfiguredPassesThrough(t *testing.T) {
	mw := middleware.APIKey(&config.ApiKeyConfig{Value: ""}, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKey_ValidKeyAccepted(t *testing.T) {
	mw := middleware.APIKey(&config.ApiKeyConfig{Value: "secret-key"}, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-API-Key", "secret-key")
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKey_InvalidKeyRejected(t *testing.T) {
	mw := middleware.APIKey(&config.ApiKeyConfig{Value: "secret-key"}, zap.NewNop())

	for _, key := range []string{"", "wrong", "secret-key2"} {
		req := httptest.NewRequest("GET", "/api/v1/orders", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "key %q", key)
		assert.Contains(t, rec.Body.String(), "unauthorized")
	}
}
