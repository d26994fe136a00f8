package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I keep track of what you spend today 💸"
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	noExpensesMessage     = "You have no expenses yet"

	incorrectAmountMessage   = "Amount must be a number greater than zero"
	incorrectCategoryMessage = "Unknown category. See /categories"
	incorrectDateMessage     = "The date is incorrect. Should be yyyy-mm-dd"
	notFoundMessage          = "There is no expense with id %s"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
	cannotExportMessage      = "Can't export your expenses atm. Try later"

	addUsage    = "/add <amount> [yyyy-mm-dd] <category> [| note]"
	editUsage   = "/edit <id> <amount> <yyyy-mm-dd> <category> [| note]"
	deleteUsage = "/delete <id>"
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	addCommand        = "/add"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	listCommand       = "/list"
	totalsCommand     = "/totals"
	exportCommand     = "/export"
	categoriesCommand = "/categories"
)

var helpMessage = strings.Join([]string{
	addUsage + " - record an expense, today by default",
	editUsage + " - replace an expense",
	deleteUsage + " - remove an expense",
	listCommand + " - newest expenses first",
	totalsCommand + " - today and this month",
	exportCommand + " - save everything as CSV",
	categoriesCommand + " - what you can spend on",
	"",
	"Everything is wiped 24 hours after the first session of the day.",
}, "\n")

type expenseService interface {
	Add(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	Edit(ctx context.Context, updated expense.Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Export(ctx context.Context) (string, int, error)
	List() []expense.Expense
	Totals() reports.Totals
	Today() expense.Date
}

type config interface {
	CurrencySymbol() string
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	expenses    expenseService
	currency    string
}

func NewHandler(expenses expenseService, config config) *HandlerService {
	res := &HandlerService{
		expenses: expenses,
		currency: config.CurrencySymbol(),
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[addCommand] = s.handleAdd
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[listCommand] = s.handleList
	m[totalsCommand] = s.handleTotals
	m[exportCommand] = s.handleExport
	m[categoriesCommand] = s.handleCategories

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string) (string, error) {
	return strings.Join(expense.Categories, "\n"), nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string) (string, error) {
	fields, note := splitNote(arg)
	draft, err := parseDraft(fields, note, s.expenses.Today())
	if err != nil {
		return validationMessage(err, addUsage), nil
	}

	added, err := s.expenses.Add(ctx, draft)
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle add")
	}
	return fmt.Sprintf("Gotcha! %s%s for %s on %s\nid: %s",
		s.currency, expense.FormatAmount(added.Amount), added.Category, added.Date, added.ID), nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string) (string, error) {
	fields, note := splitNote(arg)
	if len(fields) < 4 {
		return "Usage: " + editUsage, nil
	}

	amount, err := parseAmount(fields[1])
	if err != nil {
		return validationMessage(err, editUsage), nil
	}
	date, err := expense.ParseDate(fields[2])
	if err != nil {
		return incorrectDateMessage, nil
	}
	category, err := parseCategory(fields[3:])
	if err != nil {
		return validationMessage(err, editUsage), nil
	}

	found, err := s.expenses.Edit(ctx, expense.Expense{
		ID:       fields[0],
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	})
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle edit")
	}
	if !found {
		return fmt.Sprintf(notFoundMessage, fields[0]), nil
	}
	return fmt.Sprintf("Updated: %s%s for %s on %s", s.currency, expense.FormatAmount(amount), category, date), nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) != 1 {
		return "Usage: " + deleteUsage, nil
	}

	found, err := s.expenses.Delete(ctx, fields[0])
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle delete")
	}
	if !found {
		return fmt.Sprintf(notFoundMessage, fields[0]), nil
	}
	return "Deleted", nil
}

func (s *HandlerService) handleList(_ context.Context, _ string) (string, error) {
	items := s.expenses.List()
	if len(items) == 0 {
		return noExpensesMessage, nil
	}
	return formatList(items, s.currency), nil
}

func (s *HandlerService) handleTotals(_ context.Context, _ string) (string, error) {
	return formatTotals(s.expenses.Totals(), s.currency), nil
}

func (s *HandlerService) handleExport(ctx context.Context, _ string) (string, error) {
	path, count, err := s.expenses.Export(ctx)
	if err != nil {
		return cannotExportMessage, errors.Wrap(err, "handle export")
	}
	return fmt.Sprintf("Exported %s to %s", countLabel(count), path), nil
}

func validationMessage(err error, usage string) string {
	switch {
	case errors.Is(err, errAmount):
		return incorrectAmountMessage
	case errors.Is(err, errCategory):
		return incorrectCategoryMessage
	case errors.Is(err, errDate):
		return incorrectDateMessage
	default:
		return "Usage: " + usage
	}
}
