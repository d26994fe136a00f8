package messages

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/model/reports"
)

const (
	commandParts  = 2
	noteSeparator = "|"
)

var (
	errUsage    = errors.New("incorrect usage")
	errAmount   = errors.New("incorrect amount")
	errCategory = errors.New("unknown category")
	errDate     = errors.New("incorrect date")
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// splitNote cuts "fields | note" into its two halves.
func splitNote(arg string) (fields []string, note string) {
	head, tail, found := strings.Cut(arg, noteSeparator)
	if found {
		note = strings.TrimSpace(tail)
	}
	return strings.Fields(head), note
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, errAmount
	}
	return amount, nil
}

func parseCategory(words []string) (string, error) {
	category, ok := expense.ParseCategory(strings.Join(words, " "))
	if !ok {
		return "", errCategory
	}
	return category, nil
}

// parseDraft reads "<amount> [YYYY-MM-DD] <category>" with today as the default date.
func parseDraft(fields []string, note string, today expense.Date) (expense.Draft, error) {
	if len(fields) < 2 {
		return expense.Draft{}, errUsage
	}
	amount, err := parseAmount(fields[0])
	if err != nil {
		return expense.Draft{}, err
	}

	date, rest := today, fields[1:]
	if d, err := expense.ParseDate(fields[1]); err == nil {
		date, rest = d, fields[2:]
	} else if looksLikeDate(fields[1]) {
		return expense.Draft{}, errDate
	}
	if len(rest) == 0 {
		return expense.Draft{}, errUsage
	}

	category, err := parseCategory(rest)
	if err != nil {
		return expense.Draft{}, err
	}
	return expense.Draft{Amount: amount, Category: category, Note: note, Date: date}, nil
}

func looksLikeDate(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9' && strings.Contains(s, "-")
}

func formatExpense(e expense.Expense, currency string) string {
	line := fmt.Sprintf("%s  %s%s  %s", e.Date, currency, expense.FormatAmount(e.Amount), e.Category)
	if e.Note != "" {
		line += " (" + e.Note + ")"
	}
	return line + "\n    id: " + e.ID
}

func formatList(items []expense.Expense, currency string) string {
	res := make([]string, 0, len(items))
	for _, e := range items {
		res = append(res, formatExpense(e, currency))
	}
	return strings.Join(res, "\n")
}

func formatTotals(t reports.Totals, currency string) string {
	return fmt.Sprintf("Today: %s%s (%s)\nThis month: %s%s (%s)",
		currency, expense.FormatAmount(t.TodayTotal), countLabel(t.TodayCount),
		currency, expense.FormatAmount(t.MonthTotal), countLabel(t.MonthCount))
}

func countLabel(n int) string {
	if n == 1 {
		return "1 expense"
	}
	return fmt.Sprintf("%d expenses", n)
}
