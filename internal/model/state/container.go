package state

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/logger"
)

// ErrUnavailable is returned by Update while the stored collection cannot be read.
var ErrUnavailable = errors.New("stored expenses are unavailable")

type store interface {
	Read(ctx context.Context) ([]expense.Expense, error)
	Save(ctx context.Context, items []expense.Expense) error
}

type Listener func(items []expense.Expense)

// Container is the in-memory expense collection kept in step with its store.
// Every successful Update is persisted before subscribers hear about it.
// If the store could not be read, the container starts empty and refuses
// updates until a later read succeeds.
type Container struct {
	mu        sync.Mutex
	store     store
	items     []expense.Expense
	loadErr   error
	listeners map[int]Listener
	nextID    int
}

func New(ctx context.Context, store store) *Container {
	c := &Container{
		store:     store,
		items:     []expense.Expense{},
		listeners: make(map[int]Listener),
	}
	items, err := store.Read(ctx)
	if err != nil {
		logger.Error("cannot read stored expenses, updates are refused until it succeeds", zap.Error(err))
		c.loadErr = err
		return c
	}
	c.items = items
	return c
}

// reload retries a failed initial read. Must be called with mu held.
func (c *Container) reload(ctx context.Context) error {
	items, err := c.store.Read(ctx)
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "%v", err)
	}
	logger.Info("stored expenses are readable again", zap.Int("count", len(items)))
	c.items = items
	c.loadErr = nil
	return nil
}

// Get returns a copy of the current collection.
func (c *Container) Get() []expense.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.items)
}

// Update applies fn to a copy of the collection and saves the result.
// On a save error the in-memory collection is left as it was.
// After a failed read it returns ErrUnavailable without calling fn.
func (c *Container) Update(ctx context.Context, fn func(items []expense.Expense) []expense.Expense) ([]expense.Expense, error) {
	c.mu.Lock()
	if c.loadErr != nil {
		if err := c.reload(ctx); err != nil {
			c.mu.Unlock()
			return nil, err
		}
	}
	next := fn(clone(c.items))
	if err := c.store.Save(ctx, next); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.items = next
	snapshot := clone(next)
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(clone(snapshot))
	}
	return snapshot, nil
}

func (c *Container) Subscribe(l Listener) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func clone(items []expense.Expense) []expense.Expense {
	out := make([]expense.Expense, len(items))
	copy(out, items)
	return out
}
