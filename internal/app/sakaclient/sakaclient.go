// Package sakaclient собирает HTTP-приложение: хранилище, кеш, публикацию
// событий, сервисы и маршруты.
package sakaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/sakaclient-backend/internal/cache"
	"github.com/magabrotheeeer/sakaclient-backend/internal/config"
	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/metrics"
	"github.com/magabrotheeeer/sakaclient-backend/internal/migrations"
	"github.com/magabrotheeeer/sakaclient-backend/internal/rabbitmq"
	"github.com/magabrotheeeer/sakaclient-backend/internal/services/auth"
	"github.com/magabrotheeeer/sakaclient-backend/internal/services/calls"
	"github.com/magabrotheeeer/sakaclient-backend/internal/services/payment"
	"github.com/magabrotheeeer/sakaclient-backend/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// userCache — кеш пользователей, который приложение закрывает при остановке.
type userCache interface {
	auth.Cache
	io.Closer
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
	io.Closer
}

type nopCache struct{ cache.Nop }

func (nopCache) Close() error { return nil }

type nopPublisher struct{ rabbitmq.Nop }

func (nopPublisher) Close() error { return nil }

// App — собранное приложение.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	cache     userCache
	publisher eventPublisher
}

// New создаёт приложение: открывает хранилище, применяет миграции,
// подключает кеш и брокер, если они настроены, и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.sakaclient.New"

	source := cfg.SQLiteFile
	if cfg.Driver == config.DriverPostgres {
		source = cfg.DatabaseURL
	}
	db, err := repository.New(ctx, cfg.Driver, source, cfg.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, db.Driver()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("storage ready", slog.String("driver", db.Driver()))

	var users userCache = nopCache{}
	if cfg.RedisAddress != "" {
		redisCache, err := cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = redisCache
		logger.Info("user cache enabled", slog.String("addr", cfg.RedisAddress))
	}

	var publisher eventPublisher = nopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			_ = users.Close()
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher = amqpPublisher
		logger.Info("event publishing enabled", slog.String("exchange", cfg.AMQPExchange))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	authService := auth.New(db, users, auth.Config{
		Designers: cfg.Designers(),
		CacheTTL:  cfg.RedisTTL,
	}, logger)
	paymentService := payment.New(authService, db, publisher, m.SubscriptionsActivated, logger)
	callService := calls.New(authService, db, publisher, m.CallsOriginated, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Logger:       logger,
		CustomerCare: cfg.CustomerCare,
		RateLimit:    cfg.RateLimit,
		Metrics:      m,
		Gatherer:     registry,
		Auth:         authService,
		Payments:     paymentService,
		Calls:        callService,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		cache:     users,
		publisher: publisher,
	}, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и блокируется до ошибки сервера или отмены ctx.
// При отмене сервер останавливается, после чего закрываются ресурсы.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.Close()
		return err
	}
}

// Close освобождает хранилище, брокер и кеш.
func (a *App) Close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("failed to close publisher", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close cache", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close storage", sl.Err(err))
	}
}
