package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestComputeReminderTimes_AllFuture(t *testing.T) {
	now := date(2025, time.March, 1, 12)
	expiry := date(2025, time.April, 30, 0)

	got := ComputeReminderTimes(expiry, []int{30, 15, 7, 1}, 9, now)

	require.Len(t, got, 4)
	assert.Equal(t, 30, got[0].OffsetDays)
	assert.Equal(t, date(2025, time.March, 31, 9), got[0].FireAt)
	assert.Equal(t, 1, got[3].OffsetDays)
	assert.Equal(t, date(2025, time.April, 29, 9), got[3].FireAt)
}

func TestComputeReminderTimes_DropsPastOffsets(t *testing.T) {
	now := date(2025, time.March, 25, 12)
	expiry := date(2025, time.March, 30, 0)

	got := ComputeReminderTimes(expiry, []int{30, 15, 7, 1}, 9, now)

	// 30 and 15 days before expiry are already past; 7 days before is
	// 09:00 on March 23, also past. Only the 1-day reminder remains.
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].OffsetDays)
	assert.Equal(t, date(2025, time.March, 29, 9), got[0].FireAt)
}

func TestComputeReminderTimes_ExpiresTodayWithSevenAndOne(t *testing.T) {
	// An item expiring in 7 days at 08:00 with offsets [7, 1]: the 7-day
	// reminder fires today at 09:00 (still ahead), the 1-day reminder in
	// six days.
	now := date(2025, time.June, 10, 8)
	expiry := date(2025, time.June, 17, 0)

	got := ComputeReminderTimes(expiry, []int{7, 1}, 9, now)

	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].OffsetDays)
	assert.Equal(t, date(2025, time.June, 10, 9), got[0].FireAt)
	assert.Equal(t, 1, got[1].OffsetDays)
	assert.Equal(t, date(2025, time.June, 16, 9), got[1].FireAt)

	// Same item observed after 09:00: the 7-day reminder is gone.
	later := date(2025, time.June, 10, 10)
	got = ComputeReminderTimes(expiry, []int{7, 1}, 9, later)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].OffsetDays)
}

func TestComputeReminderTimes_DeduplicatesAndRejectsNegative(t *testing.T) {
	now := date(2025, time.March, 1, 0)
	expiry := date(2025, time.May, 1, 0)

	got := ComputeReminderTimes(expiry, []int{7, 7, -3, 1, 7}, 9, now)

	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].OffsetDays)
	assert.Equal(t, 1, got[1].OffsetDays)
}

func TestComputeReminderTimes_EmptyOffsets(t *testing.T) {
	now := date(2025, time.March, 1, 0)
	expiry := date(2025, time.May, 1, 0)

	assert.Empty(t, ComputeReminderTimes(expiry, nil, 9, now))
	assert.Empty(t, ComputeReminderTimes(expiry, []int{}, 9, now))
}

func TestComputeReminderTimes_ExpiredItem(t *testing.T) {
	now := date(2025, time.March, 10, 0)
	expiry := date(2025, time.March, 1, 0)

	assert.Empty(t, ComputeReminderTimes(expiry, []int{30, 15, 7, 1}, 9, now))
}

func TestFireTime_UsesSendHour(t *testing.T) {
	expiry := date(2025, time.April, 10, 18)

	got := FireTime(expiry, 3, 14, time.UTC)

	assert.Equal(t, date(2025, time.April, 7, 14), got)
}
