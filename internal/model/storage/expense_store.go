package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/logger"
)

// CollectionKey is the slot holding the whole expense collection.
const CollectionKey = "dailyExpenses"

const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

type keyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

type record struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	Date      expense.Date    `json:"date"`
	CreatedAt string          `json:"createdAt"`
}

type ExpenseStore struct {
	kv keyValue
}

func NewExpenseStore(kv keyValue) *ExpenseStore {
	return &ExpenseStore{kv: kv}
}

// Load never fails: a missing, unreadable or corrupt collection loads as empty.
func (s *ExpenseStore) Load(ctx context.Context) []expense.Expense {
	items, err := s.Read(ctx)
	if err != nil {
		logger.Warn("cannot read stored expenses", zap.Error(err))
		return []expense.Expense{}
	}
	return items
}

// Read is Load that reports storage failures. A missing or corrupt collection
// is still read as empty without an error.
func (s *ExpenseStore) Read(ctx context.Context) ([]expense.Expense, error) {
	raw, ok, err := s.kv.Get(ctx, CollectionKey)
	if err != nil {
		return nil, errors.Wrap(err, "read expenses")
	}
	if !ok {
		return []expense.Expense{}, nil
	}

	items, err := decodeExpenses(raw)
	if err != nil {
		logger.Warn("stored expenses are corrupt, starting empty", zap.Error(err))
		return []expense.Expense{}, nil
	}
	return items, nil
}

func (s *ExpenseStore) Save(ctx context.Context, items []expense.Expense) error {
	raw, err := encodeExpenses(items)
	if err != nil {
		return err
	}
	return errors.Wrap(s.kv.Put(ctx, CollectionKey, raw), "save expenses")
}

func encodeExpenses(items []expense.Expense) ([]byte, error) {
	records := make([]record, 0, len(items))
	for _, e := range items {
		records = append(records, record{
			ID:        e.ID,
			Amount:    e.Amount,
			Category:  e.Category,
			Note:      e.Note,
			Date:      e.Date,
			CreatedAt: e.CreatedAt.UTC().Format(createdAtLayout),
		})
	}
	raw, err := json.Marshal(records)
	return raw, errors.Wrap(err, "encode expenses")
}

func decodeExpenses(raw []byte) ([]expense.Expense, error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "decode expenses")
	}

	items := make([]expense.Expense, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		e := expense.Expense{
			ID:        r.ID,
			Amount:    r.Amount,
			Category:  r.Category,
			Note:      r.Note,
			Date:      r.Date,
			CreatedAt: createdAt,
		}
		if err = e.Validate(); err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, errors.Errorf("record %d: duplicate id %s", i, e.ID)
		}
		seen[e.ID] = struct{}{}
		items = append(items, e)
	}
	return items, nil
}
