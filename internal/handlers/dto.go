package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/crumble-app/crumble-backend/internal/gamify"
	"github.com/crumble-app/crumble-backend/internal/models"
	"github.com/crumble-app/crumble-backend/internal/store"
)

// UserDTO keeps last_active_date as a date-only string and created_at as
// RFC 3339.
type UserDTO struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Points         int     `json:"points"`
	Streak         int     `json:"streak"`
	DaysStrong     int     `json:"days_strong"`
	LastActiveDate *string `json:"last_active_date,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func toDateStringPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Points:         u.Points,
		Streak:         u.Streak,
		DaysStrong:     u.DaysStrong,
		LastActiveDate: toDateStringPtr(u.LastActiveDate),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

// writeDomainError maps core errors to user-visible statuses. The core only
// returns structured outcomes; all HTTP wording lives here.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, store.ErrEmailTaken):
		http.Error(w, "user already exists", http.StatusBadRequest)
	case errors.Is(err, store.ErrPlatformConnected):
		http.Error(w, "platform already connected", http.StatusBadRequest)
	case errors.Is(err, store.ErrAlreadyClaimed):
		http.Error(w, "reward already claimed", http.StatusBadRequest)
	case errors.Is(err, gamify.ErrInvalidReward):
		http.Error(w, "invalid reward id", http.StatusBadRequest)
	case errors.Is(err, gamify.ErrInsufficientPoints):
		http.Error(w, "not enough points to claim this reward", http.StatusBadRequest)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
