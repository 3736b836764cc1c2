package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sakaclient-backend/internal/config"
	"github.com/magabrotheeeer/sakaclient-backend/internal/migrations"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// setupTestDatabase открывает хранилище на временном файле SQLite со схемой.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()

	storage, err := New(context.Background(), config.DriverSQLite, filepath.Join(t.TempDir(), "data", "test.db"), 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, migrations.Run(storage.DB, config.DriverSQLite))
	return storage
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его ID
func (f *TestDataFactory) CreateUser(t *testing.T, phone string, isDesigner bool) int64 {
	t.Helper()

	user, _, err := f.storage.CreateUserIfAbsent(context.Background(), phone, isDesigner)
	require.NoError(t, err)
	return user.ID
}

// CreateSubscription создает тестовую подписку
func (f *TestDataFactory) CreateSubscription(t *testing.T, userID int64, plan models.Plan, expiresAt int64) int64 {
	t.Helper()

	id, err := f.storage.CreateSubscription(context.Background(), models.Subscription{
		UserID:    userID,
		Plan:      plan,
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	return id
}

// CreateCall создает тестовый звонок
func (f *TestDataFactory) CreateCall(t *testing.T, userID int64, clientNumber string) int64 {
	t.Helper()

	id, err := f.storage.CreateCall(context.Background(), models.Call{
		UserID:       userID,
		ClientNumber: clientNumber,
		Status:       models.CallStatusCompleted,
		Note:         `{"provider":"simulated","mode":"precoded","message":""}`,
		CallRef:      "SIM-test",
	})
	require.NoError(t, err)
	return id
}
