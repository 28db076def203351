// Package store defines the persistence boundary for user, gamification and
// content records. Implementations must make ledger updates all-or-nothing
// and enforce uniqueness on reward claims and achievement completions.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/crumble-app/crumble-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrPlatformConnected = errors.New("platform already connected")
	ErrAlreadyClaimed    = errors.New("reward already claimed")
)

type Store interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
	// UpdateLedger commits points, streak, days_strong and last_active_date
	// in a single write. A failed write leaves the previous state visible.
	UpdateLedger(ctx context.Context, userID, points, streak, daysStrong int, lastActive *time.Time) error

	GhostModeSettings(ctx context.Context, userID int) (models.GhostModeSettings, error)
	SetGhostModeSettings(ctx context.Context, userID int, s models.GhostModeSettings) error
	LogGhostModeDay(ctx context.Context, userID int, day time.Time) error
	CountGhostModeDays(ctx context.Context, userID int) (int, error)

	SocialPlatforms(ctx context.Context, userID int) ([]models.SocialPlatform, error)
	ConnectPlatform(ctx context.Context, userID int, name, username string) error
	DisconnectPlatform(ctx context.Context, userID int, name string) error

	ClaimedRewards(ctx context.Context, userID int) ([]models.RewardClaim, error)
	InsertRewardClaim(ctx context.Context, userID, rewardID int, at time.Time) error

	// AchievementCompletions returns completed rows most-recent-first.
	AchievementCompletions(ctx context.Context, userID int) ([]models.AchievementCompletion, error)
	// InsertAchievementCompletion inserts the first-completion row if absent.
	// It reports whether this call created the row; an existing row is never
	// overwritten.
	InsertAchievementCompletion(ctx context.Context, userID, achievementID int, at time.Time) (bool, error)

	BreakupMessages(ctx context.Context, msgType string) ([]models.BreakupMessage, error)
	SaveQuizResponse(ctx context.Context, userID, questionID int, response string) error
	QuizResponses(ctx context.Context, userID int) ([]models.QuizResponse, error)
}
