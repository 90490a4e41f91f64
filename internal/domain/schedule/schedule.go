// Package schedule computes reminder fire times from expiry dates and
// user-configured offsets. It is pure: no clocks, no I/O.
package schedule

import (
	"sort"
	"time"
)

// ReminderTime is one planned reminder for an item.
type ReminderTime struct {
	OffsetDays int       // Days before expiry this reminder fires at.
	FireAt     time.Time // The instant the reminder is due.
}

// ComputeReminderTimes derives the reminders for an item expiring at
// expiry, given the offsets (days before expiry) and the hour of day at
// which reminders fire. Offsets whose fire time is not after now are
// dropped, as are duplicate and negative offsets. The result is sorted
// by descending offset (earliest fire time first).
func ComputeReminderTimes(expiry time.Time, offsets []int, sendHour int, now time.Time) []ReminderTime {
	if len(offsets) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(offsets))
	reminders := make([]ReminderTime, 0, len(offsets))

	for _, offset := range offsets {
		if offset < 0 {
			continue
		}
		if _, dup := seen[offset]; dup {
			continue
		}
		seen[offset] = struct{}{}

		fireAt := FireTime(expiry, offset, sendHour, now.Location())
		if !fireAt.After(now) {
			continue
		}

		reminders = append(reminders, ReminderTime{OffsetDays: offset, FireAt: fireAt})
	}

	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].OffsetDays > reminders[j].OffsetDays
	})

	return reminders
}

// FireTime returns the instant a reminder with the given offset fires:
// the expiry date minus offset days, at sendHour o'clock.
func FireTime(expiry time.Time, offsetDays, sendHour int, loc *time.Location) time.Time {
	day := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), sendHour, 0, 0, 0, loc)

	return day.AddDate(0, 0, -offsetDays)
}
