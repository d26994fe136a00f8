package export

import (
	"strings"
	"time"

	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/model/reports"
)

const createdAtLayout = "2006-01-02T15:04:05.000Z"

var header = []string{"Date", "Amount", "Category", "Note", "Created At"}

// BuildCSV renders expenses oldest first. Every field, header included, is
// wrapped in double quotes as is; quotes inside a note are not escaped.
func BuildCSV(expenses []expense.Expense) string {
	rows := make([]string, 0, len(expenses)+1)
	rows = append(rows, quoteRow(header...))

	for _, e := range reports.SortForExport(expenses) {
		rows = append(rows, quoteRow(
			e.Date.String(),
			expense.FormatAmount(e.Amount),
			e.Category,
			e.Note,
			e.CreatedAt.UTC().Format(createdAtLayout),
		))
	}
	return strings.Join(rows, "\n")
}

func quoteRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + f + `"`
	}
	return strings.Join(quoted, ",")
}

// FileName is the name an export made on day gets.
func FileName(day time.Time) string {
	return "expenses_" + expense.DateOf(day).String() + ".csv"
}
