package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
)

// MarkerSlot names the slot holding the expiry marker.
const MarkerSlot = "dailyExpensesExpiry"

type expiringSlots interface {
	GetSlot(ctx context.Context, name string) (string, bool, error)
	SetSlot(ctx context.Context, name, value string, expiresAt time.Time) error
}

// MarkerStore keeps the end of the current window as Unix milliseconds.
// The medium drops the slot retention after the marker itself, so an
// elapsed marker stays readable for a while.
type MarkerStore struct {
	slots     expiringSlots
	retention time.Duration
}

func NewMarkerStore(slots expiringSlots, retention time.Duration) *MarkerStore {
	return &MarkerStore{slots: slots, retention: retention}
}

func (m *MarkerStore) Get(ctx context.Context) (time.Time, bool, error) {
	value, ok, err := m.slots.GetSlot(ctx, MarkerSlot)
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "get marker")
	}
	if !ok {
		return time.Time{}, false, nil
	}

	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.Warn("unparsable expiry marker treated as absent", zap.String("value", value))
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

func (m *MarkerStore) Set(ctx context.Context, marker time.Time) error {
	value := strconv.FormatInt(marker.UnixMilli(), 10)
	err := m.slots.SetSlot(ctx, MarkerSlot, value, marker.Add(m.retention))
	return errors.Wrap(err, "set marker")
}
