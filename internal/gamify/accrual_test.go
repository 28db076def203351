package gamify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestAccrue_FirstActivity(t *testing.T) {
	got := Accrue(Ledger{}, 10, day(2025, 3, 10))

	assert.Equal(t, 10, got.Points)
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, 1, got.DaysStrong)
	require.NotNil(t, got.LastActive)
	assert.Equal(t, day(2025, 3, 10), *got.LastActive)
}

func TestAccrue_ConsecutiveDay(t *testing.T) {
	l := Ledger{Points: 10, Streak: 3, DaysStrong: 5, LastActive: dayPtr(2025, 3, 9)}
	got := Accrue(l, 10, day(2025, 3, 10))

	assert.Equal(t, 20, got.Points)
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, 6, got.DaysStrong)
	assert.Equal(t, day(2025, 3, 10), *got.LastActive)
}

func TestAccrue_BrokenStreak(t *testing.T) {
	l := Ledger{Points: 10, Streak: 9, DaysStrong: 12, LastActive: dayPtr(2025, 3, 1)}
	got := Accrue(l, 5, day(2025, 3, 10))

	assert.Equal(t, 15, got.Points)
	assert.Equal(t, 1, got.Streak, "streak resets after a gap")
	assert.Equal(t, 13, got.DaysStrong, "cumulative engagement still counts")
}

func TestAccrue_SameDayRepeat(t *testing.T) {
	l := Ledger{Points: 10, Streak: 2, DaysStrong: 2, LastActive: dayPtr(2025, 3, 10)}
	got := Accrue(l, 10, day(2025, 3, 10))

	assert.Equal(t, 20, got.Points, "only points move on a same-day repeat")
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, 2, got.DaysStrong)
	assert.Equal(t, day(2025, 3, 10), *got.LastActive)
}

func TestAccrue_NonPositiveDeltaLeavesCountersAlone(t *testing.T) {
	l := Ledger{Points: 10, Streak: 3, DaysStrong: 4, LastActive: dayPtr(2025, 3, 1)}

	got := Accrue(l, 0, day(2025, 3, 10))
	assert.Equal(t, l, got)

	got = Accrue(l, -5, day(2025, 3, 10))
	assert.Equal(t, 5, got.Points)
	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 4, got.DaysStrong)
	assert.Equal(t, day(2025, 3, 1), *got.LastActive)
}

func TestAccrue_ClockMovedBackwards(t *testing.T) {
	l := Ledger{Points: 10, Streak: 3, DaysStrong: 4, LastActive: dayPtr(2025, 3, 10)}
	got := Accrue(l, 10, day(2025, 3, 8))

	assert.Equal(t, 20, got.Points)
	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 4, got.DaysStrong)
	assert.Equal(t, day(2025, 3, 8), *got.LastActive)
}

// Three accruals across D1, D1+1 and D1+4: consecutive activity grows both
// counters, the later gap resets the streak only.
func TestAccrue_NewUserJourney(t *testing.T) {
	d1 := day(2025, 3, 10)

	l := Accrue(Ledger{}, 10, d1)
	assert.Equal(t, Ledger{Points: 10, Streak: 1, DaysStrong: 1, LastActive: &d1}, l)

	d2 := d1.AddDate(0, 0, 1)
	l = Accrue(l, 10, d2)
	assert.Equal(t, 20, l.Points)
	assert.Equal(t, 2, l.Streak)
	assert.Equal(t, 2, l.DaysStrong)

	d5 := d1.AddDate(0, 0, 4)
	l = Accrue(l, 10, d5)
	assert.Equal(t, 30, l.Points)
	assert.Equal(t, 1, l.Streak)
	assert.Equal(t, 3, l.DaysStrong)
	assert.Equal(t, d5, *l.LastActive)
}

func randomLedger(rt *rapid.T, lastActive time.Time) Ledger {
	return Ledger{
		Points:     rapid.IntRange(0, 100000).Draw(rt, "points"),
		Streak:     rapid.IntRange(1, 1000).Draw(rt, "streak"),
		DaysStrong: rapid.IntRange(1, 1000).Draw(rt, "daysStrong"),
		LastActive: &lastActive,
	}
}

func TestAccrue_NextDayIncrementsExactlyOnceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		last := day(2025, 1, 1).AddDate(0, 0, rapid.IntRange(0, 3650).Draw(rt, "offset"))
		l := randomLedger(rt, last)
		delta := rapid.IntRange(1, 1000).Draw(rt, "delta")

		got := Accrue(l, delta, last.AddDate(0, 0, 1))

		if got.Streak != l.Streak+1 {
			rt.Fatalf("streak = %d, want %d", got.Streak, l.Streak+1)
		}
		if got.DaysStrong != l.DaysStrong+1 {
			rt.Fatalf("daysStrong = %d, want %d", got.DaysStrong, l.DaysStrong+1)
		}
		if got.Points != l.Points+delta {
			rt.Fatalf("points = %d, want %d", got.Points, l.Points+delta)
		}
	})
}

func TestAccrue_LongGapResetsStreakProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		last := day(2025, 1, 1).AddDate(0, 0, rapid.IntRange(0, 3650).Draw(rt, "offset"))
		l := randomLedger(rt, last)
		gap := rapid.IntRange(2, 10000).Draw(rt, "gap")
		delta := rapid.IntRange(1, 1000).Draw(rt, "delta")

		got := Accrue(l, delta, last.AddDate(0, 0, gap))

		if got.Streak != 1 {
			rt.Fatalf("streak = %d, want 1 regardless of prior value %d", got.Streak, l.Streak)
		}
		if got.DaysStrong != l.DaysStrong+1 {
			rt.Fatalf("daysStrong = %d, want %d", got.DaysStrong, l.DaysStrong+1)
		}
	})
}

func TestAccrue_SameDayRepeatIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		today := day(2025, 1, 1).AddDate(0, 0, rapid.IntRange(0, 3650).Draw(rt, "offset"))
		l := Ledger{}
		first := Accrue(l, rapid.IntRange(1, 1000).Draw(rt, "delta1"), today)

		delta2 := rapid.IntRange(1, 1000).Draw(rt, "delta2")
		second := Accrue(first, delta2, today)

		if second.Streak != first.Streak || second.DaysStrong != first.DaysStrong {
			rt.Fatalf("same-day repeat moved counters: %+v -> %+v", first, second)
		}
		if second.Points != first.Points+delta2 {
			rt.Fatalf("points = %d, want %d", second.Points, first.Points+delta2)
		}
		if !second.LastActive.Equal(*first.LastActive) {
			rt.Fatalf("last active date changed on same-day repeat")
		}
	})
}
