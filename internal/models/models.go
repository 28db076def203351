package models

import "time"

type User struct {
	ID             int        `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Points         int        `db:"points" json:"points"`
	Streak         int        `db:"streak" json:"streak"`
	DaysStrong     int        `db:"days_strong" json:"days_strong"`
	LastActiveDate *time.Time `db:"last_active_date" json:"last_active_date,omitempty"` // date only, no time component
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

type GhostModeSettings struct {
	BlockMessages     bool `db:"block_messages" json:"blockMessages"`
	HideStatus        bool `db:"hide_status" json:"hideStatus"`
	MuteNotifications bool `db:"mute_notifications" json:"muteNotifications"`
	HideActivity      bool `db:"hide_activity" json:"hideActivity"`
}

// Enabled reports whether any ghost mode flag is on.
func (s GhostModeSettings) Enabled() bool {
	return s.BlockMessages || s.HideStatus || s.MuteNotifications || s.HideActivity
}

type SocialPlatform struct {
	UserID      int       `db:"user_id" json:"-"`
	Name        string    `db:"platform_name" json:"name"`
	Username    string    `db:"username" json:"username"`
	ConnectedAt time.Time `db:"connected_at" json:"connected_at"`
}

type RewardClaim struct {
	UserID    int       `db:"user_id" json:"user_id"`
	RewardID  int       `db:"reward_id" json:"reward_id"`
	ClaimedAt time.Time `db:"claimed_at" json:"claimed_at"`
}

// AchievementCompletion records the first time an achievement's condition
// held for a user. The timestamp is immutable once written.
type AchievementCompletion struct {
	UserID        int       `db:"user_id" json:"user_id"`
	AchievementID int       `db:"achievement_id" json:"achievement_id"`
	CompletedAt   time.Time `db:"completed_at" json:"completed_at"`
}

type BreakupMessage struct {
	ID      int    `db:"id" json:"id"`
	Type    string `db:"type" json:"type"` // "emoji", "call", "text"
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
	Tone    string `db:"tone" json:"tone"` // "classic", "gentle", "blunt", "humorous"
}

type QuizResponse struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"-"`
	QuestionID int       `db:"question_id" json:"question_id"`
	Response   string    `db:"response" json:"response"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
