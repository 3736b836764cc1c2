package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// CreateUserIfAbsent создаёт пользователя с номером phone, если его ещё нет,
// и возвращает сохранённую запись. created равен true, если запись была вставлена
// этим вызовом. Конфликт по уникальному номеру гасится на стороне базы, поэтому
// конкурентные вызовы для одного номера не создают дубликатов.
func (s *Storage) CreateUserIfAbsent(ctx context.Context, phone string, isDesigner bool) (user *models.User, created bool, err error) {
	const op = "storage.CreateUserIfAbsent"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	err = s.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx,
			s.rebind(`INSERT INTO users (phone, is_designer) VALUES (?, ?)
			          ON CONFLICT (phone) DO NOTHING`),
			phone, isDesigner)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		created = affected == 1

		user, err = scanUser(conn.QueryRowContext(ctx,
			s.rebind(`SELECT id, phone, is_designer FROM users WHERE phone = ?`), phone))
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return user, created, nil
}

// GetUserByPhone возвращает пользователя по номеру телефона.
func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "storage.GetUserByPhone"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	user, err := scanUser(s.DB.QueryRowContext(ctx,
		s.rebind(`SELECT id, phone, is_designer FROM users WHERE phone = ?`), phone))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Phone, &u.IsDesigner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
