package cache

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func Test_OnExpiryWithinThirtyDays_ShouldUseRelativeTTL(t *testing.T) {
	assert.Equal(t, int32(24*60*60), expiration(now, now.Add(24*time.Hour)))
	assert.Equal(t, int32(maxRelativeExpiration), expiration(now, now.Add(30*24*time.Hour)))
}

func Test_OnPartialSecond_ShouldRoundUp(t *testing.T) {
	assert.Equal(t, int32(2), expiration(now, now.Add(1500*time.Millisecond)))
}

func Test_OnExpiryBeyondThirtyDays_ShouldUseUnixTime(t *testing.T) {
	expiresAt := now.Add(31 * 24 * time.Hour)

	assert.Equal(t, int32(expiresAt.Unix()), expiration(now, expiresAt))
}

func Test_OnExpiryAfter2038_ShouldClamp(t *testing.T) {
	expiresAt := time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int32(math.MaxInt32), expiration(now, expiresAt))
}

func Test_OnElapsedExpiry_ShouldExpireImmediately(t *testing.T) {
	assert.Equal(t, int32(-1), expiration(now, now))
	assert.Equal(t, int32(-1), expiration(now, now.Add(-time.Hour)))
}

func Test_OnKeyName_ShouldPrefix(t *testing.T) {
	assert.Equal(t, "daily-expenses:dailyExpensesExpiry", formatKey("dailyExpensesExpiry"))
}
