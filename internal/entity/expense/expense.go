package expense

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrMissingDate       = errors.New("date is required")
)

type Expense struct {
	ID        string
	Amount    decimal.Decimal
	Category  string
	Note      string
	Date      Date
	CreatedAt time.Time
}

// Draft is an expense that has not been recorded yet.
type Draft struct {
	Amount   decimal.Decimal
	Category string
	Note     string
	Date     Date
}

func (d Draft) Validate() error {
	if !d.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !IsCategory(d.Category) {
		return errors.Wrapf(ErrUnknownCategory, "%q", d.Category)
	}
	if d.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func (e Expense) Draft() Draft {
	return Draft{
		Amount:   e.Amount,
		Category: e.Category,
		Note:     e.Note,
		Date:     e.Date,
	}
}

// Validate checks a stored record, including the fields a Draft lacks.
func (e Expense) Validate() error {
	if e.ID == "" {
		return errors.New("empty id")
	}
	if e.CreatedAt.IsZero() {
		return errors.New("empty creation time")
	}
	return e.Draft().Validate()
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
