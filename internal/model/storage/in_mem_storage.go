package storage

import (
	"context"
	"sync"
	"time"
)

type slot struct {
	value     string
	expiresAt time.Time
}

// InMemStorage keeps values and expiring slots for the lifetime of the process.
type InMemStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
	slots  map[string]slot
	now    func() time.Time
}

func NewInMemStorage() *InMemStorage {
	return NewInMemStorageWithClock(time.Now)
}

func NewInMemStorageWithClock(now func() time.Time) *InMemStorage {
	return &InMemStorage{
		values: make(map[string][]byte),
		slots:  make(map[string]slot),
		now:    now,
	}
}

func (s *InMemStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *InMemStorage) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *InMemStorage) GetSlot(_ context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.slots[name]
	if !ok || !s.now().Before(sl.expiresAt) {
		return "", false, nil
	}
	return sl.value, true, nil
}

func (s *InMemStorage) SetSlot(_ context.Context, name, value string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[name] = slot{value: value, expiresAt: expiresAt}
	return nil
}
