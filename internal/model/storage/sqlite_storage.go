package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"

	// sqlite driver
	_ "modernc.org/sqlite"
)

const (
	kvTable      = "kv"
	markersTable = "markers"
)

// SQLiteStorage is a key-value table plus an expiring slot table in one local file.
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStorage(ctx context.Context, dbPath string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}

	if err = RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite storage ready", zap.String("path", dbPath))
	return &SQLiteStorage{db: db, now: time.Now}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"name": key})

	var value string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get value")
	}
	return []byte(value), true, nil
}

func (s *SQLiteStorage) Put(ctx context.Context, key string, value []byte) error {
	query := sq.Insert(kvTable).
		Columns("name", "value", "updated_at").
		Values(key, string(value), s.now().UnixMilli()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "put value")
}

// GetSlot reports an expired slot as absent.
func (s *SQLiteStorage) GetSlot(ctx context.Context, name string) (string, bool, error) {
	query := sq.Select("value", "expires_at").
		From(markersTable).
		Where(sq.Eq{"name": name})

	var (
		value     string
		expiresAt int64
	)
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "get slot")
	}
	if s.now().UnixMilli() >= expiresAt {
		return "", false, nil
	}
	return value, true, nil
}

func (s *SQLiteStorage) SetSlot(ctx context.Context, name, value string, expiresAt time.Time) error {
	query := sq.Insert(markersTable).
		Columns("name", "value", "expires_at").
		Values(name, value, expiresAt.UnixMilli()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set slot")
}
