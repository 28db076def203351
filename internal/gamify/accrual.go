// Package gamify implements the points, streak and days-strong rules plus
// the achievement and reward catalogs built on top of them.
package gamify

import "time"

// Ledger is a snapshot of a user's gamification counters. Accrue is a pure
// function over this snapshot; persistence and locking live in Service.
type Ledger struct {
	Points     int
	Streak     int
	DaysStrong int
	LastActive *time.Time // calendar date, nil until first activity
}

// DateOnly strips the time component, keeping the calendar date in UTC so
// whole-day arithmetic is exact.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayGap(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// Accrue applies a point delta dated today and returns the updated ledger.
//
// Points always move by delta. The streak and days-strong counters react only
// to positive deltas:
//   - first activity ever, or repeat activity on the same day, floors both
//     counters at 1 without double-counting;
//   - activity on the next calendar day increments both;
//   - activity after a longer gap resets the streak to 1 but still counts a
//     day of engagement.
func Accrue(l Ledger, delta int, today time.Time) Ledger {
	next := l
	next.Points += delta
	if delta <= 0 {
		return next
	}

	day := DateOnly(today)
	if l.LastActive == nil {
		next.Streak = max(1, l.Streak)
		next.DaysStrong = max(1, l.DaysStrong)
		next.LastActive = &day
		return next
	}

	switch gap := dayGap(*l.LastActive, day); {
	case gap == 0:
		// Same-day repeat: counters stay, the date is already today.
		next.Streak = max(1, l.Streak)
		next.DaysStrong = max(1, l.DaysStrong)
	case gap == 1:
		next.Streak = l.Streak + 1
		next.DaysStrong = l.DaysStrong + 1
		next.LastActive = &day
	case gap > 1:
		next.Streak = 1
		next.DaysStrong = l.DaysStrong + 1
		next.LastActive = &day
	default:
		// Clock moved backwards; treat like first activity.
		next.Streak = max(1, l.Streak)
		next.DaysStrong = max(1, l.DaysStrong)
		next.LastActive = &day
	}
	return next
}
