// Package middlewarectx содержит HTTP middleware сервиса: общий ограничитель
// частоты запросов и сбор метрик Prometheus.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/sakaclient-backend/internal/http/response"
)

const errTooManyRequests = "too many requests"

// RateLimitMiddleware ограничивает частоту запросов ко всему сервису
// token bucket'ом на rps запросов в секунду с запасом burst.
// При rps <= 0 ограничение выключено.
func RateLimitMiddleware(log *slog.Logger, rps float64, burst int, customerCare string) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				response.WriteError(w, r, http.StatusTooManyRequests, errTooManyRequests, customerCare)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
