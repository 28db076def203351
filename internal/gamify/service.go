package gamify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crumble-app/crumble-backend/internal/models"
	"github.com/crumble-app/crumble-backend/internal/store"
	"github.com/crumble-app/crumble-backend/internal/userlock"
)

var (
	ErrInvalidReward      = errors.New("invalid reward id")
	ErrInsufficientPoints = errors.New("not enough points to claim this reward")
)

type AchievementStatus struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type CompletedAchievement struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	CompletedAt time.Time `json:"completed_at"`
}

type RewardStatus struct {
	Reward
	Unlocked bool `json:"unlocked"`
	Claimed  bool `json:"claimed"`
}

// Service applies the gamification rules against a Store. Every
// read-modify-write over a user's ledger runs under that user's lock.
type Service struct {
	store store.Store
	locks *userlock.Keyed
	now   func() time.Time
}

func NewService(st store.Store, locks *userlock.Keyed) *Service {
	return &Service{store: st, locks: locks, now: time.Now}
}

func (s *Service) today() time.Time {
	return DateOnly(s.now())
}

// AccruePoints adds delta points for the user dated today and returns the
// user with the updated ledger.
func (s *Service) AccruePoints(ctx context.Context, userID, delta int) (*models.User, error) {
	var updated *models.User
	err := s.locks.WithLock(userID, func() error {
		u, err := s.store.UserByID(ctx, userID)
		if err != nil {
			return err
		}
		updated, err = s.accrueLocked(ctx, u, delta)
		return err
	})
	return updated, err
}

// accrueLocked assumes the caller holds the user's lock.
func (s *Service) accrueLocked(ctx context.Context, u *models.User, delta int) (*models.User, error) {
	next := Accrue(Ledger{
		Points:     u.Points,
		Streak:     u.Streak,
		DaysStrong: u.DaysStrong,
		LastActive: u.LastActiveDate,
	}, delta, s.today())

	if err := s.store.UpdateLedger(ctx, u.ID, next.Points, next.Streak, next.DaysStrong, next.LastActive); err != nil {
		return nil, err
	}
	u.Points = next.Points
	u.Streak = next.Streak
	u.DaysStrong = next.DaysStrong
	u.LastActiveDate = next.LastActive
	return u, nil
}

// EvaluateAchievements re-derives completion from live ledger state, records
// first completions and grants each achievement's points exactly once. The
// grant goes through the accrual engine, so it nudges streak and days-strong
// the same way any other positive delta would.
func (s *Service) EvaluateAchievements(ctx context.Context, userID int) ([]AchievementStatus, error) {
	var statuses []AchievementStatus
	err := s.locks.WithLock(userID, func() error {
		u, err := s.store.UserByID(ctx, userID)
		if err != nil {
			return err
		}
		ghostDays, err := s.store.CountGhostModeDays(ctx, userID)
		if err != nil {
			return err
		}
		completions, err := s.completionTimes(ctx, userID)
		if err != nil {
			return err
		}

		// Predicates see the snapshot taken before any grant in this pass.
		progress := Progress{Streak: u.Streak, DaysStrong: u.DaysStrong, GhostModeDays: ghostDays}

		statuses = statuses[:0]
		for _, a := range Achievements {
			done := a.Done(progress)
			if done {
				if _, seen := completions[a.ID]; !seen {
					at := s.now()
					inserted, err := s.store.InsertAchievementCompletion(ctx, userID, a.ID, at)
					if err != nil {
						return err
					}
					if inserted {
						if u, err = s.accrueLocked(ctx, u, a.Points); err != nil {
							return err
						}
						completions[a.ID] = at
					} else {
						// Another writer beat us to the row; report its timestamp.
						if completions, err = s.completionTimes(ctx, userID); err != nil {
							return err
						}
					}
				}
			}
			st := AchievementStatus{
				ID:          a.ID,
				Title:       a.Title,
				Description: a.Description,
				Points:      a.Points,
				Completed:   done,
			}
			// completed tracks the live counters; the first-completion
			// timestamp sticks around even if they later regress.
			if at, ok := completions[a.ID]; ok {
				t := at
				st.CompletedAt = &t
			}
			statuses = append(statuses, st)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (s *Service) completionTimes(ctx context.Context, userID int) (map[int]time.Time, error) {
	rows, err := s.store.AchievementCompletions(ctx, userID)
	if err != nil {
		return nil, err
	}
	m := make(map[int]time.Time, len(rows))
	for _, c := range rows {
		m[c.AchievementID] = c.CompletedAt
	}
	return m, nil
}

// RecentAchievements lists already-completed achievements most-recent-first.
// It never evaluates or mutates anything.
func (s *Service) RecentAchievements(ctx context.Context, userID int) ([]CompletedAchievement, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.store.AchievementCompletions(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]CompletedAchievement, 0, len(rows))
	for _, c := range rows {
		a, ok := AchievementByID(c.AchievementID)
		if !ok {
			continue
		}
		out = append(out, CompletedAchievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Points:      a.Points,
			CompletedAt: c.CompletedAt,
		})
	}
	return out, nil
}

// ListRewards combines live points with the static catalog and claim table.
func (s *Service) ListRewards(ctx context.Context, userID int) ([]RewardStatus, error) {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	claims, err := s.store.ClaimedRewards(ctx, userID)
	if err != nil {
		return nil, err
	}
	claimed := make(map[int]bool, len(claims))
	for _, c := range claims {
		claimed[c.RewardID] = true
	}
	out := make([]RewardStatus, 0, len(Rewards))
	for _, r := range Rewards {
		out = append(out, RewardStatus{
			Reward:   r,
			Unlocked: u.Points >= r.Points,
			Claimed:  claimed[r.ID],
		})
	}
	return out, nil
}

// ClaimReward records a one-time claim and returns the full set of claimed
// reward ids. Claiming is an unlock, not a purchase: points are not deducted.
func (s *Service) ClaimReward(ctx context.Context, userID, rewardID int) ([]int, error) {
	reward, ok := RewardByID(rewardID)
	if !ok {
		return nil, ErrInvalidReward
	}
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Points < reward.Points {
		return nil, ErrInsufficientPoints
	}
	if err := s.store.InsertRewardClaim(ctx, userID, rewardID, s.now()); err != nil {
		return nil, err
	}
	claims, err := s.store.ClaimedRewards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload claims: %w", err)
	}
	ids := make([]int, 0, len(claims))
	for _, c := range claims {
		ids = append(ids, c.RewardID)
	}
	return ids, nil
}

// GhostMode returns the user's ghost mode settings, all-false by default.
func (s *Service) GhostMode(ctx context.Context, userID int) (models.GhostModeSettings, error) {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return models.GhostModeSettings{}, err
	}
	return s.store.GhostModeSettings(ctx, userID)
}

// SetGhostMode overwrites the user's settings. Saving with any flag enabled
// counts today as a ghost-mode-usage day, which feeds achievement 3.
func (s *Service) SetGhostMode(ctx context.Context, userID int, gm models.GhostModeSettings) error {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.store.SetGhostModeSettings(ctx, userID, gm); err != nil {
		return err
	}
	if gm.Enabled() {
		return s.store.LogGhostModeDay(ctx, userID, s.today())
	}
	return nil
}
