package expiry

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-expenses/internal/entity/expense"
	"max.ks1230/daily-expenses/internal/model/expiry/mock"
	"max.ks1230/daily-expenses/internal/model/storage"
)

func seed(t *testing.T, store *storage.ExpenseStore) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), []expense.Expense{{
		ID:        "kept",
		Amount:    decimal.NewFromInt(3),
		Category:  expense.Shopping,
		Date:      expense.NewDate(2024, time.March, 1),
		CreatedAt: time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC),
	}}))
}

func Test_OnGuardScenario_ShouldCreateKeepThenReset(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	clock := start
	slots := storage.NewInMemStorageWithClock(func() time.Time { return clock })
	markers := storage.NewMarkerStore(slots, 30*24*time.Hour)
	collection := storage.NewExpenseStore(storage.NewInMemStorage())
	seed(t, collection)
	guard := NewGuard(markers, collection)

	outcome, err := guard.Run(ctx, clock)
	require.NoError(t, err)
	assert.Equal(t, MarkerCreated, outcome)
	assert.Len(t, collection.Load(ctx), 1)
	marker, ok, err := markers.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, start.Add(Window).Equal(marker))

	clock = start.Add(time.Minute)
	outcome, err = guard.Run(ctx, clock)
	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)
	assert.Len(t, collection.Load(ctx), 1)
	again, _, _ := markers.Get(ctx)
	assert.True(t, marker.Equal(again))

	clock = start.Add(Window + time.Second)
	outcome, err = guard.Run(ctx, clock)
	require.NoError(t, err)
	assert.Equal(t, Reset, outcome)
	assert.Empty(t, collection.Load(ctx))
	renewed, ok, err := markers.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, clock.Add(Window).Equal(renewed))
}

func Test_OnMarkerExactlyNow_ShouldNotReset(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	markers := mock.NewMarkerStoreMock(m)
	collection := mock.NewCollectionStoreMock(m)

	markers.GetMock.Expect(ctx).Return(now, true, nil)

	outcome, err := NewGuard(markers, collection).Run(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)
	assert.Zero(t, markers.SetBeforeCounter())
	assert.Zero(t, collection.SaveBeforeCounter())
}

func Test_OnMissingMarker_ShouldCreateWithoutClearing(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	markers := mock.NewMarkerStoreMock(m)
	collection := mock.NewCollectionStoreMock(m)

	markers.GetMock.Expect(ctx).Return(time.Time{}, false, nil)
	markers.SetMock.Expect(ctx, now.Add(Window)).Return(nil)

	outcome, err := NewGuard(markers, collection).Run(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, MarkerCreated, outcome)
	assert.Zero(t, collection.SaveBeforeCounter())
}

func Test_OnClearFailure_ShouldNotMoveMarker(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ctx := context.Background()
	now := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	markers := mock.NewMarkerStoreMock(m)
	collection := mock.NewCollectionStoreMock(m)

	markers.GetMock.Expect(ctx).Return(now.Add(-time.Hour), true, nil)
	collection.SaveMock.Expect(ctx, []expense.Expense{}).Return(errors.New("io"))

	_, err := NewGuard(markers, collection).Run(ctx, now)

	assert.Error(t, err)
	assert.Zero(t, markers.SetBeforeCounter())
}

func Test_OnMarkerWriteFailure_ShouldReportAfterClearing(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ctx := context.Background()
	now := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	markers := mock.NewMarkerStoreMock(m)
	collection := mock.NewCollectionStoreMock(m)

	markers.GetMock.Expect(ctx).Return(now.Add(-time.Hour), true, nil)
	collection.SaveMock.Expect(ctx, []expense.Expense{}).Return(nil)
	markers.SetMock.
		Inspect(func(context.Context, time.Time) {
			assert.Equal(t, uint64(1), collection.SaveAfterCounter(), "collection must be cleared first")
		}).
		Expect(ctx, now.Add(Window)).
		Return(errors.New("io"))

	outcome, err := NewGuard(markers, collection).Run(ctx, now)

	assert.Error(t, err)
	assert.Equal(t, Reset, outcome)
}

func Test_OnMarkerReadFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ctx := context.Background()
	markers := mock.NewMarkerStoreMock(m)
	collection := mock.NewCollectionStoreMock(m)

	markers.GetMock.Expect(ctx).Return(time.Time{}, false, errors.New("unreachable"))

	outcome, err := NewGuard(markers, collection).Run(ctx, time.Now())

	assert.Error(t, err)
	assert.Equal(t, Unchanged, outcome)
	assert.Zero(t, markers.SetBeforeCounter())
	assert.Zero(t, collection.SaveBeforeCounter())
}
