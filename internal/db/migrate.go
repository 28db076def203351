package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/crumble-app/crumble-backend/internal/store"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    points INTEGER NOT NULL DEFAULT 0,
    streak INTEGER NOT NULL DEFAULT 0,
    days_strong INTEGER NOT NULL DEFAULT 0,
    last_active_date DATE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ghost_mode_settings (
    user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    block_messages BOOLEAN NOT NULL DEFAULT false,
    hide_status BOOLEAN NOT NULL DEFAULT false,
    mute_notifications BOOLEAN NOT NULL DEFAULT false,
    hide_activity BOOLEAN NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS ghost_mode_logs (
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    used_on DATE NOT NULL,
    PRIMARY KEY (user_id, used_on)
);

CREATE TABLE IF NOT EXISTS social_platforms (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    platform_name TEXT NOT NULL,
    username TEXT NOT NULL DEFAULT '',
    connected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE(user_id, platform_name)
);

CREATE TABLE IF NOT EXISTS user_rewards (
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    reward_id INTEGER NOT NULL,
    claimed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, reward_id)
);

CREATE TABLE IF NOT EXISTS user_achievements (
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    achievement_id INTEGER NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, achievement_id)
);

CREATE TABLE IF NOT EXISTS breakup_messages (
    id SERIAL PRIMARY KEY,
    type TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    tone TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS quiz_responses (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL,
    response TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}
	return seedBreakupMessages(ctx, db)
}

// seedBreakupMessages loads the built-in message library once.
func seedBreakupMessages(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM breakup_messages`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, m := range store.SeedBreakupMessages {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO breakup_messages (type, title, content, tone) VALUES ($1, $2, $3, $4)`,
			m.Type, m.Title, m.Content, m.Tone); err != nil {
			return err
		}
	}
	return nil
}
