package gamify

// Progress carries the counters achievement predicates are derived from.
// GhostModeDays is the number of distinct calendar days with logged ghost
// mode usage.
type Progress struct {
	Streak        int
	DaysStrong    int
	GhostModeDays int
}

type Achievement struct {
	ID          int
	Title       string
	Description string
	Points      int // granted once, on first completion
	Done        func(Progress) bool
}

// Achievements is the fixed catalog, evaluated in id order.
var Achievements = []Achievement{
	{
		ID:          1,
		Title:       "7-Day Streak",
		Description: "Logged in for 7 consecutive days",
		Points:      50,
		Done:        func(p Progress) bool { return p.Streak >= 7 },
	},
	{
		ID:          2,
		Title:       "30-Day Journey",
		Description: "Reached 30 days in your healing journey",
		Points:      100,
		Done:        func(p Progress) bool { return p.DaysStrong >= 30 },
	},
	{
		ID:          3,
		Title:       "Ghost Mode Master",
		Description: "Used Ghost Mode features for 30 days",
		Points:      150,
		Done:        func(p Progress) bool { return p.GhostModeDays >= 30 },
	},
}

func AchievementByID(id int) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
