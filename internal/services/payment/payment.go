// Package payment содержит симуляцию оплаты тарифа: без обращения к платёжному
// шлюзу создаёт подписку со сроком окончания по выбранному тарифу.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
	"github.com/magabrotheeeer/sakaclient-backend/internal/rabbitmq"
)

// UserFinder находит существующего пользователя по номеру.
type UserFinder interface {
	UserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// SubscriptionRepository сохраняет подписки.
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error)
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service активирует тарифы.
type Service struct {
	users       UserFinder
	repo        SubscriptionRepository
	pub         Publisher
	activations *prometheus.CounterVec
	log         *slog.Logger
	now         func() time.Time
}

// New создает новый экземпляр Service. activations может быть nil.
func New(users UserFinder, repo SubscriptionRepository, pub Publisher, activations *prometheus.CounterVec, log *slog.Logger) *Service {
	return &Service{
		users:       users,
		repo:        repo,
		pub:         pub,
		activations: activations,
		log:         log,
		now:         time.Now,
	}
}

// Activate создаёт подписку plan для пользователя phone и возвращает срок её окончания в unix ms.
// manual отмечает ручную активацию, на хранимые данные не влияет.
func (s *Service) Activate(ctx context.Context, phone string, plan models.Plan, manual bool) (int64, error) {
	const op = "services.payment.Activate"

	if !plan.Valid() {
		return 0, fmt.Errorf("%s: unknown plan %q", op, plan)
	}

	user, err := s.users.UserByPhone(ctx, phone)
	if err != nil {
		return 0, err
	}

	now := s.now()
	sub := models.Subscription{
		UserID:    user.ID,
		Plan:      plan,
		ExpiresAt: plan.ExpiresAt(now),
		CreatedAt: now.UnixMilli(),
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription activated",
		slog.Int64("id", id),
		slog.Int64("user_id", user.ID),
		slog.String("plan", string(plan)),
		slog.Bool("manual", manual),
	)

	if s.activations != nil {
		s.activations.WithLabelValues(string(plan)).Inc()
	}

	event := rabbitmq.SubscriptionActivated{
		UserID:    user.ID,
		Phone:     user.Phone,
		Plan:      string(plan),
		ExpiresAt: sub.ExpiresAt,
		Manual:    manual,
	}
	if err := s.pub.Publish(ctx, rabbitmq.RoutingSubscriptionActivated, event); err != nil {
		s.log.Warn("failed to publish subscription event", sl.Err(err))
	}

	return sub.ExpiresAt, nil
}
