package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/crumble-app/crumble-backend/internal/models"
)

const pgUniqueViolation = "23505"

// PostgresStore persists records through sqlx over the pgx stdlib driver.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, username, email, password_hash, points, streak, days_strong, last_active_date, created_at`

func (s *PostgresStore) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING `+userColumns,
		username, email, passwordHash).StructScan(&u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) UserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) UpdateLedger(ctx context.Context, userID, points, streak, daysStrong int, lastActive *time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET points=$2, streak=$3, days_strong=$4, last_active_date=$5 WHERE id=$1`,
		userID, points, streak, daysStrong, lastActive)
	if err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GhostModeSettings(ctx context.Context, userID int) (models.GhostModeSettings, error) {
	var gm models.GhostModeSettings
	err := s.db.GetContext(ctx, &gm,
		`SELECT block_messages, hide_status, mute_notifications, hide_activity FROM ghost_mode_settings WHERE user_id=$1`,
		userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// All-false defaults for users who never touched the toggles.
			return models.GhostModeSettings{}, nil
		}
		return models.GhostModeSettings{}, fmt.Errorf("get ghost mode settings: %w", err)
	}
	return gm, nil
}

func (s *PostgresStore) SetGhostModeSettings(ctx context.Context, userID int, gm models.GhostModeSettings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ghost_mode_settings (user_id, block_messages, hide_status, mute_notifications, hide_activity)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   block_messages = EXCLUDED.block_messages,
		   hide_status = EXCLUDED.hide_status,
		   mute_notifications = EXCLUDED.mute_notifications,
		   hide_activity = EXCLUDED.hide_activity`,
		userID, gm.BlockMessages, gm.HideStatus, gm.MuteNotifications, gm.HideActivity)
	if err != nil {
		return fmt.Errorf("set ghost mode settings: %w", err)
	}
	return nil
}

func (s *PostgresStore) LogGhostModeDay(ctx context.Context, userID int, day time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ghost_mode_logs (user_id, used_on) VALUES ($1, $2) ON CONFLICT (user_id, used_on) DO NOTHING`,
		userID, day.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("log ghost mode day: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountGhostModeDays(ctx context.Context, userID int) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM ghost_mode_logs WHERE user_id=$1`, userID); err != nil {
		return 0, fmt.Errorf("count ghost mode days: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) SocialPlatforms(ctx context.Context, userID int) ([]models.SocialPlatform, error) {
	var out []models.SocialPlatform
	err := s.db.SelectContext(ctx, &out,
		`SELECT user_id, platform_name, username, connected_at FROM social_platforms WHERE user_id=$1 ORDER BY connected_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list social platforms: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) ConnectPlatform(ctx context.Context, userID int, name, username string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO social_platforms (user_id, platform_name, username) VALUES ($1, $2, $3)`,
		userID, name, username)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlatformConnected
		}
		return fmt.Errorf("connect platform: %w", err)
	}
	return nil
}

func (s *PostgresStore) DisconnectPlatform(ctx context.Context, userID int, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM social_platforms WHERE user_id=$1 AND platform_name=$2`, userID, name)
	if err != nil {
		return fmt.Errorf("disconnect platform: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ClaimedRewards(ctx context.Context, userID int) ([]models.RewardClaim, error) {
	var out []models.RewardClaim
	err := s.db.SelectContext(ctx, &out,
		`SELECT user_id, reward_id, claimed_at FROM user_rewards WHERE user_id=$1 ORDER BY reward_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list claimed rewards: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) InsertRewardClaim(ctx context.Context, userID, rewardID int, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_rewards (user_id, reward_id, claimed_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, reward_id) DO NOTHING`,
		userID, rewardID, at)
	if err != nil {
		return fmt.Errorf("insert reward claim: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyClaimed
	}
	return nil
}

func (s *PostgresStore) AchievementCompletions(ctx context.Context, userID int) ([]models.AchievementCompletion, error) {
	var out []models.AchievementCompletion
	err := s.db.SelectContext(ctx, &out,
		`SELECT user_id, achievement_id, completed_at FROM user_achievements WHERE user_id=$1 ORDER BY completed_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list achievement completions: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) InsertAchievementCompletion(ctx context.Context, userID, achievementID int, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_achievements (user_id, achievement_id, completed_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		userID, achievementID, at)
	if err != nil {
		return false, fmt.Errorf("insert achievement completion: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *PostgresStore) BreakupMessages(ctx context.Context, msgType string) ([]models.BreakupMessage, error) {
	var out []models.BreakupMessage
	var err error
	if msgType == "" {
		err = s.db.SelectContext(ctx, &out, `SELECT id, type, title, content, tone FROM breakup_messages ORDER BY id`)
	} else {
		err = s.db.SelectContext(ctx, &out, `SELECT id, type, title, content, tone FROM breakup_messages WHERE type=$1 ORDER BY id`, msgType)
	}
	if err != nil {
		return nil, fmt.Errorf("list breakup messages: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) SaveQuizResponse(ctx context.Context, userID, questionID int, response string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_responses (user_id, question_id, response) VALUES ($1, $2, $3)`,
		userID, questionID, response)
	if err != nil {
		return fmt.Errorf("save quiz response: %w", err)
	}
	return nil
}

func (s *PostgresStore) QuizResponses(ctx context.Context, userID int) ([]models.QuizResponse, error) {
	var out []models.QuizResponse
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, user_id, question_id, response, created_at FROM quiz_responses WHERE user_id=$1 ORDER BY question_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list quiz responses: %w", err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
