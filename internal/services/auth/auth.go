// Package auth содержит логику входа по номеру телефона и проверки доступа.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// UserRepository описывает контракт для работы с пользователями и подписками в хранилище.
type UserRepository interface {
	// CreateUserIfAbsent создаёт пользователя, если номера ещё нет, и возвращает сохранённую запись.
	CreateUserIfAbsent(ctx context.Context, phone string, isDesigner bool) (*models.User, bool, error)
	// GetUserByPhone возвращает пользователя или models.ErrUserNotFound.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	// LatestSubscription возвращает последнюю подписку или models.ErrSubscriptionNotFound.
	LatestSubscription(ctx context.Context, userID int64) (*models.Subscription, error)
}

// Cache описывает методы для кеширования пользователей.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Config — настройки сервиса, передаются при создании.
type Config struct {
	// Designers — номера, которым при создании выставляется флаг дизайнера.
	Designers map[string]struct{}
	// CacheTTL — время жизни пользователя в кеше.
	CacheTTL time.Duration
}

// Service реализует вход по номеру телефона и вычисление доступа.
type Service struct {
	repo  UserRepository
	cache Cache
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
}

// New создает новый экземпляр Service.
func New(repo UserRepository, cache Cache, cfg Config, log *slog.Logger) *Service {
	if cfg.Designers == nil {
		cfg.Designers = map[string]struct{}{}
	}
	return &Service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
	}
}

// IsDesigner сообщает, входит ли номер в список дизайнеров.
func (s *Service) IsDesigner(phone string) bool {
	_, ok := s.cfg.Designers[phone]
	return ok
}

// Login возвращает пользователя с номером phone, создавая его при первом входе.
func (s *Service) Login(ctx context.Context, phone string) (*models.User, error) {
	const op = "services.auth.Login"

	if user, ok := s.cached(ctx, phone); ok {
		return user, nil
	}

	user, created, err := s.repo.CreateUserIfAbsent(ctx, phone, s.IsDesigner(phone))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if created {
		s.log.Info("created new user", slog.Int64("id", user.ID), sl.Phone(user.Phone), slog.Bool("is_designer", user.IsDesigner))
	}
	s.remember(ctx, user)
	return user, nil
}

// UserByPhone возвращает существующего пользователя или models.ErrUserNotFound.
func (s *Service) UserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "services.auth.UserByPhone"

	if user, ok := s.cached(ctx, phone); ok {
		return user, nil
	}

	user, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.remember(ctx, user)
	return user, nil
}

// Access вычисляет доступ пользователя по его последней подписке.
func (s *Service) Access(ctx context.Context, phone string) (*models.Access, error) {
	const op = "services.auth.Access"

	user, err := s.UserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	access := &models.Access{IsDesigner: user.IsDesigner}
	sub, err := s.repo.LatestSubscription(ctx, user.ID)
	if errors.Is(err, models.ErrSubscriptionNotFound) {
		return access, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	access.ActivePaid = sub.ActiveAt(s.now())
	access.ExpiresAt = sub.ExpiresAt
	return access, nil
}

func cacheKey(phone string) string {
	return "user:phone:" + phone
}

// cached читает пользователя из кеша. Ошибки кеша не прерывают запрос.
func (s *Service) cached(ctx context.Context, phone string) (*models.User, bool) {
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey(phone), &user)
	if err != nil {
		s.log.Warn("failed to read user from cache", sl.Err(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &user, true
}

// remember кладёт пользователя в кеш. Пользователи не меняются, поэтому инвалидация не нужна.
func (s *Service) remember(ctx context.Context, user *models.User) {
	if err := s.cache.Set(ctx, cacheKey(user.Phone), user, s.cfg.CacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey(user.Phone)), sl.Err(err))
	}
}
