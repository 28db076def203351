package gamify

type Reward struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"` // point threshold; claiming never spends points
}

// Rewards is the fixed catalog of unlockable privileges.
var Rewards = []Reward{
	{ID: 1, Title: "Digital Journal Theme", Description: "Unlock a premium journal theme", Points: 100},
	{ID: 2, Title: "Custom Affirmations", Description: "Create and save your own affirmations", Points: 200},
	{ID: 3, Title: "Advanced Analytics", Description: "Get detailed insights into your healing journey", Points: 300},
	{ID: 4, Title: "Meditation Collection", Description: "Access premium guided meditations", Points: 500},
}

func RewardByID(id int) (Reward, bool) {
	for _, r := range Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
