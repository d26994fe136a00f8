package expense

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseCategory_ShouldIgnoreCase(t *testing.T) {
	c, ok := ParseCategory("  food & dining ")
	assert.True(t, ok)
	assert.Equal(t, FoodAndDining, c)

	_, ok = ParseCategory("Groceries")
	assert.False(t, ok)
}

func Test_OnParseDate_ShouldRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 1), d)
	assert.Equal(t, "2024-03-01", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func Test_OnDateOf_ShouldUseLocationOfTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	instant := time.Date(2024, time.March, 31, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, NewDate(2024, time.March, 31), DateOf(instant))
	assert.Equal(t, NewDate(2024, time.April, 1), DateOf(instant.In(loc)))
}

func Test_OnDateCompare_ShouldOrderByDay(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := NewDate(2024, time.January, 5)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
}

func Test_OnDraftValidate_ShouldRejectInvalidFields(t *testing.T) {
	valid := Draft{
		Amount:   decimal.RequireFromString("12.50"),
		Category: FoodAndDining,
		Date:     NewDate(2024, time.March, 1),
	}
	assert.NoError(t, valid.Validate())

	zero := valid
	zero.Amount = decimal.Zero
	assert.ErrorIs(t, zero.Validate(), ErrNonPositiveAmount)

	negative := valid
	negative.Amount = decimal.NewFromInt(-3)
	assert.ErrorIs(t, negative.Validate(), ErrNonPositiveAmount)

	badCategory := valid
	badCategory.Category = "food & dining"
	assert.True(t, errors.Is(badCategory.Validate(), ErrUnknownCategory))

	noDate := valid
	noDate.Date = Date{}
	assert.ErrorIs(t, noDate.Validate(), ErrMissingDate)
}

func Test_OnFormatAmount_ShouldUseTwoDecimals(t *testing.T) {
	assert.Equal(t, "5.00", FormatAmount(decimal.NewFromInt(5)))
	assert.Equal(t, "17.50", FormatAmount(decimal.RequireFromString("17.5")))
}
