package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/daily-expenses/internal/clients/cache"
	"max.ks1230/daily-expenses/internal/config"
	"max.ks1230/daily-expenses/internal/model/storage"
)

type keyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

type expiringSlots interface {
	GetSlot(ctx context.Context, name string) (string, bool, error)
	SetSlot(ctx context.Context, name, value string, expiresAt time.Time) error
}

type stores struct {
	expenses *storage.ExpenseStore
	markers  *storage.MarkerStore
	closers  []io.Closer
}

func (s *stores) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

func openStores(ctx context.Context, conf *config.Service) (*stores, error) {
	res := &stores{}

	var (
		memory *storage.InMemStorage
		sqlite *storage.SQLiteStorage
	)
	openMemory := func() *storage.InMemStorage {
		if memory == nil {
			memory = storage.NewInMemStorage()
		}
		return memory
	}
	openSQLite := func() (*storage.SQLiteStorage, error) {
		if sqlite != nil {
			return sqlite, nil
		}
		var err error
		sqlite, err = storage.NewSQLiteStorage(ctx, conf.Storage().SQLitePath())
		if err != nil {
			return nil, err
		}
		res.closers = append(res.closers, sqlite)
		return sqlite, nil
	}

	var kv keyValue
	switch conf.Storage().Backend() {
	case config.BackendMemory:
		kv = openMemory()
	default:
		db, err := openSQLite()
		if err != nil {
			return nil, errors.Wrap(err, "open expense storage")
		}
		kv = db
	}

	var slots expiringSlots
	switch conf.Marker().Backend() {
	case config.BackendMemory:
		slots = openMemory()
	case config.BackendMemcached:
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			res.Close()
			return nil, errors.Wrap(err, "open marker storage")
		}
		slots = mc
	default:
		db, err := openSQLite()
		if err != nil {
			res.Close()
			return nil, errors.Wrap(err, "open marker storage")
		}
		slots = db
	}

	res.expenses = storage.NewExpenseStore(kv)
	res.markers = storage.NewMarkerStore(slots, conf.Marker().RetentionPeriod())
	return res, nil
}
