package reports

import (
	"sort"

	"max.ks1230/daily-expenses/internal/entity/expense"
)

// SortForDisplay returns a copy ordered newest first: by date, then by creation time.
func SortForDisplay(expenses []expense.Expense) []expense.Expense {
	res := make([]expense.Expense, len(expenses))
	copy(res, expenses)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date.After(res[j].Date)
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

// SortForExport returns a copy ordered oldest date first. Records sharing a
// date keep their input order.
func SortForExport(expenses []expense.Expense) []expense.Expense {
	res := make([]expense.Expense, len(expenses))
	copy(res, expenses)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	return res
}
