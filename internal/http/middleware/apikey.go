package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/presswork-as/estimate-api/internal/config"
	"go.uber.org/zap"
)

// APIKey returns a middleware that requires a matching X-API-Key header.
// When no key is configured the middleware passes every request through,
// so local development works without credentials.
func APIKey(cfg *config.ApiKeyConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if cfg.Value == "" {
		logger.Warn("API key authentication disabled - no key configured")
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.Value)) != 1 {
				logger.Warn("rejected request with invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","message":"Missing or invalid API key"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
