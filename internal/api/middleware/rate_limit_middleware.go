package middleware

import (
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/limiter"
)

// NewRateLimitMiddleware 創建非Scope限流中間件
func NewRateLimitMiddleware(config *limiter.LimiterConfig) func(http.Handler) http.Handler {
	bucket := limiter.NewTokenBucket(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bucket.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
