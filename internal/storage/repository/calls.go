package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// CreateCall вставляет запись о звонке и возвращает её ID.
func (s *Storage) CreateCall(ctx context.Context, call models.Call) (int64, error) {
	const op = "storage.CreateCall"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO calls (user_id, client_number, status, note, call_ref, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, s.rebind(query),
		call.UserID, call.ClientNumber, call.Status, call.Note, call.CallRef, call.CreatedAt).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCalls возвращает не более limit последних звонков пользователя, новые первыми.
func (s *Storage) ListCalls(ctx context.Context, userID int64, limit int) ([]models.Call, error) {
	const op = "storage.ListCalls"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, client_number, status, note, call_ref, created_at
			  FROM calls
			  WHERE user_id = ?
			  ORDER BY id DESC
			  LIMIT ?`
	rows, err := s.DB.QueryContext(ctx, s.rebind(query), userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Call, 0)
	for rows.Next() {
		var (
			c    models.Call
			note sql.NullString
		)
		if err = rows.Scan(&c.ID, &c.UserID, &c.ClientNumber, &c.Status, &note, &c.CallRef, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		c.Note = note.String
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
