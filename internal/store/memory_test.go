package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateUser(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, 0, u.Points)
	assert.Nil(t, u.LastActiveDate)

	_, err = st.CreateUser(ctx, "other", "ava@example.com", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := st.UserByEmail(ctx, "ava@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = st.UserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateLedger(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	last := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.UpdateLedger(ctx, u.ID, 30, 2, 3, &last))

	got, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Points)
	assert.Equal(t, 2, got.Streak)
	assert.Equal(t, 3, got.DaysStrong)
	require.NotNil(t, got.LastActiveDate)
	assert.Equal(t, last, *got.LastActiveDate)

	assert.ErrorIs(t, st.UpdateLedger(ctx, 42, 1, 1, 1, nil), ErrNotFound)
}

func TestMemoryStore_AchievementCompletionInsertIfAbsent(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	first := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	inserted, err := st.InsertAchievementCompletion(ctx, u.ID, 1, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = st.InsertAchievementCompletion(ctx, u.ID, 1, first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted)

	rows, err := st.AchievementCompletions(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first, rows[0].CompletedAt, "existing row never overwritten")
}

func TestMemoryStore_ConcurrentCompletionInsertsExactlyOne(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := st.InsertAchievementCompletion(ctx, u.ID, 1, time.Now())
			assert.NoError(t, err)
			results <- inserted
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for inserted := range results {
		if inserted {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestMemoryStore_RewardClaimUniqueness(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, st.InsertRewardClaim(ctx, u.ID, 1, now))
	assert.ErrorIs(t, st.InsertRewardClaim(ctx, u.ID, 1, now), ErrAlreadyClaimed)
	require.NoError(t, st.InsertRewardClaim(ctx, u.ID, 2, now))

	claims, err := st.ClaimedRewards(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, 1, claims[0].RewardID)
	assert.Equal(t, 2, claims[1].RewardID)
}

func TestMemoryStore_GhostModeDaysAreDistinct(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.LogGhostModeDay(ctx, u.ID, d))
	require.NoError(t, st.LogGhostModeDay(ctx, u.ID, d.Add(6*time.Hour)))
	require.NoError(t, st.LogGhostModeDay(ctx, u.ID, d.AddDate(0, 0, 1)))

	n, err := st.CountGhostModeDays(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoryStore_SocialPlatforms(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, st.ConnectPlatform(ctx, u.ID, "instagram", "ava.gram"))
	assert.ErrorIs(t, st.ConnectPlatform(ctx, u.ID, "instagram", "other"), ErrPlatformConnected)

	platforms, err := st.SocialPlatforms(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, "instagram", platforms[0].Name)

	require.NoError(t, st.DisconnectPlatform(ctx, u.ID, "instagram"))
	assert.ErrorIs(t, st.DisconnectPlatform(ctx, u.ID, "instagram"), ErrNotFound)
}

func TestMemoryStore_BreakupMessagesSeeded(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	all, err := st.BreakupMessages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 12)

	emoji, err := st.BreakupMessages(ctx, "emoji")
	require.NoError(t, err)
	require.Len(t, emoji, 4)
	for _, m := range emoji {
		assert.Equal(t, "emoji", m.Type)
	}
}

func TestMemoryStore_QuizResponses(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	u, err := st.CreateUser(ctx, "ava", "ava@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, st.SaveQuizResponse(ctx, u.ID, 2, "sometimes"))
	require.NoError(t, st.SaveQuizResponse(ctx, u.ID, 1, "yes"))

	responses, err := st.QuizResponses(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, responses[0].QuestionID)
	assert.Equal(t, 2, responses[1].QuestionID)
}
