package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/crumble-app/crumble-backend/internal/models"
)

// MemoryStore is an in-process Store used by tests and by the server when no
// DATABASE_URL is configured. A single mutex guards all maps, which keeps
// every write atomic with respect to readers.
type MemoryStore struct {
	mu sync.Mutex

	nextUserID int
	users      map[int]*models.User
	byEmail    map[string]int

	ghostSettings map[int]models.GhostModeSettings
	ghostDays     map[int]map[string]struct{}

	platforms map[int]map[string]models.SocialPlatform
	claims    map[int]map[int]time.Time
	completed map[int]map[int]time.Time

	messages  []models.BreakupMessage
	nextQuiz  int
	responses []models.QuizResponse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextUserID:    1,
		users:         make(map[int]*models.User),
		byEmail:       make(map[string]int),
		ghostSettings: make(map[int]models.GhostModeSettings),
		ghostDays:     make(map[int]map[string]struct{}),
		platforms:     make(map[int]map[string]models.SocialPlatform),
		claims:        make(map[int]map[int]time.Time),
		completed:     make(map[int]map[int]time.Time),
		messages:      append([]models.BreakupMessage(nil), SeedBreakupMessages...),
		nextQuiz:      1,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}
	u := &models.User{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

func (s *MemoryStore) UserByID(_ context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) UpdateLedger(_ context.Context, userID, points, streak, daysStrong int, lastActive *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Points = points
	u.Streak = streak
	u.DaysStrong = daysStrong
	if lastActive != nil {
		d := *lastActive
		u.LastActiveDate = &d
	} else {
		u.LastActiveDate = nil
	}
	return nil
}

func (s *MemoryStore) GhostModeSettings(_ context.Context, userID int) (models.GhostModeSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ghostSettings[userID], nil
}

func (s *MemoryStore) SetGhostModeSettings(_ context.Context, userID int, gm models.GhostModeSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ghostSettings[userID] = gm
	return nil
}

func (s *MemoryStore) LogGhostModeDay(_ context.Context, userID int, day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	days, ok := s.ghostDays[userID]
	if !ok {
		days = make(map[string]struct{})
		s.ghostDays[userID] = days
	}
	days[day.Format("2006-01-02")] = struct{}{}
	return nil
}

func (s *MemoryStore) CountGhostModeDays(_ context.Context, userID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ghostDays[userID]), nil
}

func (s *MemoryStore) SocialPlatforms(_ context.Context, userID int) ([]models.SocialPlatform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.SocialPlatform
	for _, p := range s.platforms[userID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConnectedAt.After(out[j].ConnectedAt) })
	return out, nil
}

func (s *MemoryStore) ConnectPlatform(_ context.Context, userID int, name, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.platforms[userID]
	if !ok {
		ps = make(map[string]models.SocialPlatform)
		s.platforms[userID] = ps
	}
	if _, ok := ps[name]; ok {
		return ErrPlatformConnected
	}
	ps[name] = models.SocialPlatform{UserID: userID, Name: name, Username: username, ConnectedAt: time.Now()}
	return nil
}

func (s *MemoryStore) DisconnectPlatform(_ context.Context, userID int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.platforms[userID]
	if _, ok := ps[name]; !ok {
		return ErrNotFound
	}
	delete(ps, name)
	return nil
}

func (s *MemoryStore) ClaimedRewards(_ context.Context, userID int) ([]models.RewardClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RewardClaim
	for id, at := range s.claims[userID] {
		out = append(out, models.RewardClaim{UserID: userID, RewardID: id, ClaimedAt: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RewardID < out[j].RewardID })
	return out, nil
}

func (s *MemoryStore) InsertRewardClaim(_ context.Context, userID, rewardID int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.claims[userID]
	if !ok {
		cs = make(map[int]time.Time)
		s.claims[userID] = cs
	}
	if _, ok := cs[rewardID]; ok {
		return ErrAlreadyClaimed
	}
	cs[rewardID] = at
	return nil
}

func (s *MemoryStore) AchievementCompletions(_ context.Context, userID int) ([]models.AchievementCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AchievementCompletion
	for id, at := range s.completed[userID] {
		out = append(out, models.AchievementCompletion{UserID: userID, AchievementID: id, CompletedAt: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

func (s *MemoryStore) InsertAchievementCompletion(_ context.Context, userID, achievementID int, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.completed[userID]
	if !ok {
		cs = make(map[int]time.Time)
		s.completed[userID] = cs
	}
	if _, ok := cs[achievementID]; ok {
		return false, nil
	}
	cs[achievementID] = at
	return true, nil
}

func (s *MemoryStore) BreakupMessages(_ context.Context, msgType string) ([]models.BreakupMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.BreakupMessage
	for _, m := range s.messages {
		if msgType == "" || m.Type == msgType {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryStore) SaveQuizResponse(_ context.Context, userID, questionID int, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, models.QuizResponse{
		ID:         s.nextQuiz,
		UserID:     userID,
		QuestionID: questionID,
		Response:   response,
		CreatedAt:  time.Now(),
	})
	s.nextQuiz++
	return nil
}

func (s *MemoryStore) QuizResponses(_ context.Context, userID int) ([]models.QuizResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.QuizResponse
	for _, r := range s.responses {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}
