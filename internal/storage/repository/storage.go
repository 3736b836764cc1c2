// Package repository реализует хранилище данных на основе SQLite или PostgreSQL
// для пользователей, подписок и звонков. Соединения берутся из пула database/sql
// на время выполнения операции и возвращаются в пул при любом исходе.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Регистрация драйвера sqlite (modernc, без cgo).
	_ "modernc.org/sqlite"

	"github.com/magabrotheeeer/sakaclient-backend/internal/config"
)

// Storage инкапсулирует пул соединений с базой данных.
type Storage struct {
	DB     *sql.DB
	driver string
}

// New открывает пул соединений. Для sqlite source — путь к файлу базы,
// для postgres — строка подключения.
func New(ctx context.Context, driver, source string, maxOpenConns int) (*Storage, error) {
	const op = "storage.New"

	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case config.DriverSQLite:
		db, err = openSQLite(source)
	case config.DriverPostgres:
		db, err = sql.Open("pgx", source)
	default:
		return nil, fmt.Errorf("%s: unknown driver %q", op, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB:     db,
		driver: driver,
	}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite database path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	return sql.Open("sqlite", dsn)
}

// Driver возвращает имя драйвера, с которым открыто хранилище.
func (s *Storage) Driver() string {
	return s.driver
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Ping проверяет доступность базы.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// withConn берёт одно соединение из пула на время fn и возвращает его при выходе.
func (s *Storage) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()
	return fn(conn)
}

// rebind переписывает плейсхолдеры "?" в "$n" для postgres.
func (s *Storage) rebind(query string) string {
	if s.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
