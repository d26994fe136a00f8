package reports

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-expenses/internal/entity/expense"
)

func item(id, amount string, date expense.Date, createdAt time.Time) expense.Expense {
	return expense.Expense{
		ID:        id,
		Amount:    decimal.RequireFromString(amount),
		Category:  expense.Other,
		Date:      date,
		CreatedAt: createdAt,
	}
}

func Test_OnCompute_ShouldSumTodayAndMonth(t *testing.T) {
	march1 := expense.NewDate(2024, time.March, 1)
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	items := []expense.Expense{
		item("a", "12.50", march1, created),
		item("b", "5", march1, created.Add(time.Minute)),
	}
	at := time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)

	totals := Compute(items, at, time.UTC)

	assert.Equal(t, "17.50", expense.FormatAmount(totals.TodayTotal))
	assert.Equal(t, 2, totals.TodayCount)
	assert.Equal(t, "17.50", expense.FormatAmount(totals.MonthTotal))
	assert.Equal(t, 2, totals.MonthCount)
}

func Test_OnCompute_ShouldRespectMonthBoundaries(t *testing.T) {
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	items := []expense.Expense{
		item("feb", "100", expense.NewDate(2024, time.February, 29), created),
		item("first", "1", expense.NewDate(2024, time.March, 1), created),
		item("mid", "2", expense.NewDate(2024, time.March, 15), created),
		item("last", "3", expense.NewDate(2024, time.March, 31), created),
		item("apr", "200", expense.NewDate(2024, time.April, 1), created),
		item("lastYear", "400", expense.NewDate(2023, time.March, 15), created),
	}
	at := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	totals := Compute(items, at, time.UTC)

	assert.Equal(t, "6.00", expense.FormatAmount(totals.MonthTotal))
	assert.Equal(t, 3, totals.MonthCount)
	assert.Equal(t, "2.00", expense.FormatAmount(totals.TodayTotal))
	assert.Equal(t, 1, totals.TodayCount)
}

func Test_OnCompute_ShouldUseCalendarOfLocation(t *testing.T) {
	created := time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC)
	items := []expense.Expense{
		item("april", "7", expense.NewDate(2024, time.April, 1), created),
	}
	at := time.Date(2024, time.March, 31, 22, 30, 0, 0, time.UTC)
	plus3 := time.FixedZone("UTC+3", 3*60*60)

	inUTC := Compute(items, at, time.UTC)
	inPlus3 := Compute(items, at, plus3)

	assert.Equal(t, 0, inUTC.TodayCount)
	assert.Equal(t, 0, inUTC.MonthCount)
	assert.Equal(t, 1, inPlus3.TodayCount)
	assert.Equal(t, 1, inPlus3.MonthCount)
}

func Test_OnComputeEmpty_ShouldReturnZeroes(t *testing.T) {
	totals := Compute(nil, time.Now(), nil)

	assert.True(t, totals.TodayTotal.IsZero())
	assert.True(t, totals.MonthTotal.IsZero())
	assert.Zero(t, totals.TodayCount)
	assert.Zero(t, totals.MonthCount)
}

func Test_OnShuffledInput_ShouldKeepMonthTotal(t *testing.T) {
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	items := make([]expense.Expense, 0, 30)
	for day := 1; day <= 30; day++ {
		items = append(items, item("x", "1.10", expense.NewDate(2024, time.March, day), created))
	}
	at := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	want := Compute(items, at, time.UTC)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rnd.Shuffle(len(items), func(a, b int) { items[a], items[b] = items[b], items[a] })
		got := Compute(items, at, time.UTC)
		assert.True(t, want.MonthTotal.Equal(got.MonthTotal))
		assert.Equal(t, want.MonthCount, got.MonthCount)
	}
	assert.Equal(t, "33.00", expense.FormatAmount(want.MonthTotal))
}

func Test_OnSort_ShouldOrderDisplayNewestAndExportOldest(t *testing.T) {
	created := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	items := []expense.Expense{
		item("jan1", "1", expense.NewDate(2024, time.January, 1), created),
		item("jan5", "2", expense.NewDate(2024, time.January, 5), created),
	}

	display := SortForDisplay(items)
	export := SortForExport(items)

	require.Len(t, display, 2)
	assert.Equal(t, "jan5", display[0].ID)
	assert.Equal(t, "jan1", display[1].ID)
	assert.Equal(t, "jan1", export[0].ID)
	assert.Equal(t, "jan5", export[1].ID)
	assert.Equal(t, "jan1", items[0].ID, "input must stay untouched")
}

func Test_OnSameDate_ShouldBreakTiesByCreationForDisplayOnly(t *testing.T) {
	day := expense.NewDate(2024, time.January, 1)
	created := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	items := []expense.Expense{
		item("early", "1", day, created),
		item("late", "1", day, created.Add(time.Hour)),
	}

	assert.Equal(t, "late", SortForDisplay(items)[0].ID)
	assert.Equal(t, "early", SortForExport(items)[0].ID)
}
