package sakaclient

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация swagger-документа.
	_ "github.com/magabrotheeeer/sakaclient-backend/docs"
	"github.com/magabrotheeeer/sakaclient-backend/internal/config"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/auth/access"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/call/history"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/call/originate"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/health"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/handlers/payment/activate"
	"github.com/magabrotheeeer/sakaclient-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sakaclient-backend/internal/metrics"
)

// AuthService — бизнес-логика входа и проверки доступа.
type AuthService interface {
	login.Service
	access.Service
}

// CallService — бизнес-логика звонков.
type CallService interface {
	originate.Service
	history.Service
}

// Deps — зависимости маршрутов.
type Deps struct {
	Logger       *slog.Logger
	CustomerCare string
	RateLimit    config.RateLimit
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Auth         AuthService
	Payments     activate.Service
	Calls        CallService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}),
		middlewarectx.MetricsMiddleware(d.Metrics),
		middlewarectx.RateLimitMiddleware(d.Logger, d.RateLimit.RPS, d.RateLimit.Burst, d.CustomerCare),
	)

	r.Get("/ping", health.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(d.Logger, d.CustomerCare).ServeHTTP)

		r.Post("/auth/login-phone", login.New(d.Logger, d.Auth, d.CustomerCare).ServeHTTP)
		r.Get("/auth/access/{phone}", access.New(d.Logger, d.Auth, d.CustomerCare).ServeHTTP)

		r.Post("/payments/start", activate.NewStart(d.Logger, d.Payments, d.CustomerCare).ServeHTTP)
		r.Post("/payments/activate/manual", activate.NewManual(d.Logger, d.Payments, d.CustomerCare).ServeHTTP)

		r.Post("/calls/originate", originate.New(d.Logger, d.Calls, d.CustomerCare).ServeHTTP)
		r.Get("/calls/history/{phone}", history.New(d.Logger, d.Calls, d.CustomerCare).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
