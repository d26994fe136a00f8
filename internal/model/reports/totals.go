package reports

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"max.ks1230/daily-expenses/internal/entity/expense"
)

type Totals struct {
	TodayTotal decimal.Decimal
	TodayCount int
	MonthTotal decimal.Decimal
	MonthCount int
}

// Compute derives today's and this month's totals. "Today" is the calendar
// day of at in loc; the month is the calendar month containing it.
func Compute(expenses []expense.Expense, at time.Time, loc *time.Location) Totals {
	if loc == nil {
		loc = time.Local
	}
	local := now.With(at.In(loc))
	today := expense.DateOf(local.Time)
	monthStart := expense.DateOf(local.BeginningOfMonth())
	monthEnd := expense.DateOf(local.EndOfMonth())

	res := Totals{
		TodayTotal: decimal.Zero,
		MonthTotal: decimal.Zero,
	}
	for _, e := range expenses {
		if e.Date == today {
			res.TodayTotal = res.TodayTotal.Add(e.Amount)
			res.TodayCount++
		}
		if !e.Date.Before(monthStart) && !e.Date.After(monthEnd) {
			res.MonthTotal = res.MonthTotal.Add(e.Amount)
			res.MonthCount++
		}
	}
	return res
}
