package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/logger"
	"max.ks1230/daily-expenses/internal/model/notify"
	"max.ks1230/daily-expenses/internal/model/reports"
)

const (
	opAdd    = "add"
	opEdit   = "edit"
	opDelete = "delete"
	opExport = "export"
)

const deletedMessage = "Expense has been removed from your log"

type container interface {
	Get() []expense.Expense
	Update(ctx context.Context, fn func(items []expense.Expense) []expense.Expense) ([]expense.Expense, error)
}

type exporter interface {
	Export(ctx context.Context, expenses []expense.Expense, today time.Time) (string, error)
}

type config interface {
	Location() (*time.Location, error)
	CurrencySymbol() string
}

// Service runs the expense operations against the shared collection.
type Service struct {
	items    container
	exporter exporter
	notifier notify.Notifier
	loc      *time.Location
	currency string
	clock    func() time.Time
	newID    func() string
}

type Option func(s *Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(config config, items container, exporter exporter, notifier notify.Notifier, opts ...Option) (*Service, error) {
	loc, err := config.Location()
	if err != nil {
		return nil, errors.Wrap(err, "load location")
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}

	s := &Service{
		items:    items,
		exporter: exporter,
		notifier: notifier,
		loc:      loc,
		currency: config.CurrencySymbol(),
		clock:    time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Today is the current calendar day in the configured location.
func (s *Service) Today() expense.Date {
	return expense.DateOf(s.clock().In(s.loc))
}

func (s *Service) Add(ctx context.Context, draft expense.Draft) (res expense.Expense, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer span.Finish()
	defer s.observe(span, opAdd, time.Now(), &err, nil)

	if err = draft.Validate(); err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}

	res = expense.Expense{
		ID:        s.newID(),
		Amount:    draft.Amount,
		Category:  draft.Category,
		Note:      draft.Note,
		Date:      draft.Date,
		CreatedAt: s.clock(),
	}
	_, err = s.items.Update(ctx, func(items []expense.Expense) []expense.Expense {
		return append(items, res)
	})
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}

	logger.Info("expense added", zap.String("id", res.ID), zap.String("amount", res.Amount.String()))
	s.notifier.Notify(notify.Added, fmt.Sprintf("Added %s%s for %s", s.currency, expense.FormatAmount(res.Amount), res.Category))
	return res, nil
}

// Edit replaces the record with the same id. The stored creation time is kept.
// An unknown id leaves the collection untouched and reports found == false.
func (s *Service) Edit(ctx context.Context, updated expense.Expense) (found bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "editExpense")
	defer span.Finish()
	defer s.observe(span, opEdit, time.Now(), &err, &found)

	if err = updated.Draft().Validate(); err != nil {
		return false, errors.Wrap(err, "edit expense")
	}
	if !s.exists(updated.ID) {
		return false, nil
	}

	_, err = s.items.Update(ctx, func(items []expense.Expense) []expense.Expense {
		for i := range items {
			if items[i].ID == updated.ID {
				updated.CreatedAt = items[i].CreatedAt
				items[i] = updated
				found = true
			}
		}
		return items
	})
	if err != nil {
		return false, errors.Wrap(err, "edit expense")
	}
	if !found {
		return false, nil
	}

	logger.Info("expense updated", zap.String("id", updated.ID))
	s.notifier.Notify(notify.Updated, fmt.Sprintf("Updated expense for %s%s", s.currency, expense.FormatAmount(updated.Amount)))
	return true, nil
}

// Delete removes the record with id if there is one.
func (s *Service) Delete(ctx context.Context, id string) (found bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer span.Finish()
	defer s.observe(span, opDelete, time.Now(), &err, &found)

	if !s.exists(id) {
		return false, nil
	}

	_, err = s.items.Update(ctx, func(items []expense.Expense) []expense.Expense {
		res := items[:0]
		for _, e := range items {
			if e.ID == id {
				found = true
				continue
			}
			res = append(res, e)
		}
		return res
	})
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	if !found {
		return false, nil
	}

	logger.Info("expense deleted", zap.String("id", id))
	s.notifier.Notify(notify.Deleted, deletedMessage)
	return true, nil
}

// Export writes the whole collection as CSV and returns the saved path.
func (s *Service) Export(ctx context.Context) (path string, count int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exportExpenses")
	defer span.Finish()
	defer s.observe(span, opExport, time.Now(), &err, nil)

	items := s.items.Get()
	path, err = s.exporter.Export(ctx, items, s.clock().In(s.loc))
	if err != nil {
		return "", 0, err
	}

	s.notifier.Notify(notify.Exported, fmt.Sprintf("Exported %d expenses to CSV", len(items)))
	return path, len(items), nil
}

// List returns the collection newest first.
func (s *Service) List() []expense.Expense {
	return reports.SortForDisplay(s.items.Get())
}

func (s *Service) Totals() reports.Totals {
	return reports.Compute(s.items.Get(), s.clock(), s.loc)
}

func (s *Service) exists(id string) bool {
	for _, e := range s.items.Get() {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) observe(span opentracing.Span, op string, start time.Time, err *error, found *bool) {
	status := statusOK
	switch {
	case *err != nil:
		status = statusError
		ext.Error.Set(span, true)
		span.SetTag("error.message", (*err).Error())
	case found != nil && !*found:
		status = statusMiss
	}
	observeOperation(op, status, time.Since(start))
}
