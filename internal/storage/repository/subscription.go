package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// CreateSubscription вставляет новую запись подписки и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_id, plan, expires_at, created_at)
			  VALUES (?, ?, ?, ?)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, s.rebind(query),
		sub.UserID, string(sub.Plan), sub.ExpiresAt, sub.CreatedAt).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// LatestSubscription возвращает подписку пользователя с самым поздним окончанием.
// При равных сроках выбирается последняя вставленная.
func (s *Storage) LatestSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	const op = "storage.LatestSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, plan, expires_at, created_at
			  FROM subscriptions
			  WHERE user_id = ?
			  ORDER BY expires_at DESC, id DESC
			  LIMIT 1`
	var (
		sub  models.Subscription
		plan string
	)
	err := s.DB.QueryRowContext(ctx, s.rebind(query), userID).
		Scan(&sub.ID, &sub.UserID, &plan, &sub.ExpiresAt, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrSubscriptionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.Plan = models.Plan(plan)
	return &sub, nil
}
