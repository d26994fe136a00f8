package expiry

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/logger"
)

// Window is how long a collection lives before the next session clears it.
const Window = 24 * time.Hour

type Outcome int

const (
	Unchanged Outcome = iota
	MarkerCreated
	Reset
)

func (o Outcome) String() string {
	switch o {
	case MarkerCreated:
		return "marker-created"
	case Reset:
		return "reset"
	default:
		return "unchanged"
	}
}

//go:generate minimock -i markerStore -o ./mock/marker_store_mock.go -n MarkerStoreMock
type markerStore interface {
	Get(ctx context.Context) (time.Time, bool, error)
	Set(ctx context.Context, marker time.Time) error
}

//go:generate minimock -i collectionStore -o ./mock/collection_store_mock.go -n CollectionStoreMock
type collectionStore interface {
	Save(ctx context.Context, items []expense.Expense) error
}

type Guard struct {
	markers    markerStore
	collection collectionStore
}

func NewGuard(markers markerStore, collection collectionStore) *Guard {
	return &Guard{markers: markers, collection: collection}
}

// Run is meant to be called once when a session starts. Repeated calls
// inside one window change nothing.
func (g *Guard) Run(ctx context.Context, now time.Time) (Outcome, error) {
	marker, ok, err := g.markers.Get(ctx)
	if err != nil {
		return Unchanged, errors.Wrap(err, "read expiry marker")
	}

	if !ok {
		if err = g.markers.Set(ctx, now.Add(Window)); err != nil {
			return Unchanged, errors.Wrap(err, "create expiry marker")
		}
		logger.Info("expiry marker created", zap.Time("expiresAt", now.Add(Window)))
		return MarkerCreated, nil
	}

	if !now.After(marker) {
		return Unchanged, nil
	}

	// collection first: a failed marker write only repeats the clear next session
	if err = g.collection.Save(ctx, []expense.Expense{}); err != nil {
		return Unchanged, errors.Wrap(err, "clear expired expenses")
	}
	if err = g.markers.Set(ctx, now.Add(Window)); err != nil {
		return Reset, errors.Wrap(err, "reset expiry marker")
	}
	logger.Info("expenses cleared after window elapsed",
		zap.Time("elapsedAt", marker),
		zap.Time("expiresAt", now.Add(Window)))
	return Reset, nil
}
