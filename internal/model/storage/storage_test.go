package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-expenses/internal/entity/expense"
)

var testCreatedAt = time.Date(2024, time.March, 1, 9, 15, 30, 123_000_000, time.UTC)

func sampleExpenses() []expense.Expense {
	return []expense.Expense{
		{
			ID:        "a1",
			Amount:    decimal.RequireFromString("12.50"),
			Category:  expense.FoodAndDining,
			Note:      "lunch",
			Date:      expense.NewDate(2024, time.March, 1),
			CreatedAt: testCreatedAt,
		},
		{
			ID:        "b2",
			Amount:    decimal.NewFromInt(5),
			Category:  expense.Other,
			Date:      expense.NewDate(2024, time.February, 28),
			CreatedAt: testCreatedAt.Add(time.Minute),
		},
	}
}

func assertSameExpenses(t *testing.T, want, got []expense.Expense) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, want[i].Amount.Equal(got[i].Amount), "amount %s != %s", want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Note, got[i].Note)
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func Test_OnLoadWithoutValue_ShouldReturnEmpty(t *testing.T) {
	store := NewExpenseStore(NewInMemStorage())

	items := store.Load(context.Background())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func Test_OnSaveThenLoad_ShouldReturnSameCollection(t *testing.T) {
	ctx := context.Background()
	store := NewExpenseStore(NewInMemStorage())

	require.NoError(t, store.Save(ctx, sampleExpenses()))

	assertSameExpenses(t, sampleExpenses(), store.Load(ctx))
}

func Test_OnSave_ShouldUseDocumentedFormat(t *testing.T) {
	ctx := context.Background()
	kv := NewInMemStorage()
	store := NewExpenseStore(kv)

	require.NoError(t, store.Save(ctx, sampleExpenses()[1:]))

	raw, ok, err := kv.Get(ctx, CollectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"id":"b2","amount":"5","category":"Other","date":"2024-02-28","createdAt":"2024-03-01T09:16:30.123Z"}]`,
		string(raw))
}

func Test_OnLoadNumericAmounts_ShouldDecode(t *testing.T) {
	ctx := context.Background()
	kv := NewInMemStorage()
	require.NoError(t, kv.Put(ctx, CollectionKey, []byte(
		`[{"id":"x","amount":12.5,"category":"Travel","note":"","date":"2024-03-01","createdAt":"2024-03-01T10:00:00.000Z"}]`)))

	items := NewExpenseStore(kv).Load(ctx)

	require.Len(t, items, 1)
	assert.Equal(t, "12.50", expense.FormatAmount(items[0].Amount))
	assert.Equal(t, expense.Travel, items[0].Category)
}

type unreachableKV struct{}

func (unreachableKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (unreachableKV) Put(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func Test_OnReadFailure_ShouldReportErrorButLoadEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewExpenseStore(unreachableKV{})

	_, err := store.Read(ctx)
	items := store.Load(ctx)

	assert.Error(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func Test_OnReadCorruptValue_ShouldReturnEmptyWithoutError(t *testing.T) {
	ctx := context.Background()
	kv := NewInMemStorage()
	require.NoError(t, kv.Put(ctx, CollectionKey, []byte(`{{{`)))

	items, err := NewExpenseStore(kv).Read(ctx)

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func Test_OnLoadCorruptValue_ShouldReturnEmpty(t *testing.T) {
	cases := map[string]string{
		"not json":          `{{{`,
		"object not array":  `{"id":"x"}`,
		"negative amount":   `[{"id":"x","amount":"-1","category":"Other","date":"2024-03-01","createdAt":"2024-03-01T10:00:00.000Z"}]`,
		"unknown category":  `[{"id":"x","amount":"1","category":"Pets","date":"2024-03-01","createdAt":"2024-03-01T10:00:00.000Z"}]`,
		"bad date":          `[{"id":"x","amount":"1","category":"Other","date":"01/03/2024","createdAt":"2024-03-01T10:00:00.000Z"}]`,
		"missing createdAt": `[{"id":"x","amount":"1","category":"Other","date":"2024-03-01"}]`,
		"duplicate ids": `[{"id":"x","amount":"1","category":"Other","date":"2024-03-01","createdAt":"2024-03-01T10:00:00.000Z"},
			{"id":"x","amount":"2","category":"Other","date":"2024-03-01","createdAt":"2024-03-01T10:00:00.000Z"}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewInMemStorage()
			require.NoError(t, kv.Put(ctx, CollectionKey, []byte(raw)))

			items := NewExpenseStore(kv).Load(ctx)

			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func Test_OnMarkerSet_ShouldStoreUnixMillis(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	slots := NewInMemStorageWithClock(func() time.Time { return now })
	markers := NewMarkerStore(slots, time.Hour)

	marker := now.Add(24 * time.Hour)
	require.NoError(t, markers.Set(ctx, marker))

	raw, ok, err := slots.GetSlot(ctx, MarkerSlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1709380800000", raw)

	got, ok, err := markers.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, marker.Equal(got))
}

func Test_OnMarkerPastRetention_ShouldReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	slots := NewInMemStorageWithClock(func() time.Time { return now })
	markers := NewMarkerStore(slots, time.Hour)
	marker := now.Add(24 * time.Hour)
	require.NoError(t, markers.Set(ctx, marker))

	now = marker.Add(30 * time.Minute)
	_, ok, err := markers.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "elapsed marker must stay visible within retention")

	now = marker.Add(time.Hour)
	_, ok, err = markers.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnUnparsableMarker_ShouldReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	slots := NewInMemStorage()
	require.NoError(t, slots.SetSlot(ctx, MarkerSlot, "tomorrow", time.Now().Add(time.Hour)))

	_, ok, err := NewMarkerStore(slots, 0).Get(ctx)

	require.NoError(t, err)
	assert.False(t, ok)
}
