package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/gamify"
	"github.com/crumble-app/crumble-backend/internal/store"
)

type UserHandler struct {
	store store.Store
	svc   *gamify.Service
}

func NewUserHandler(st store.Store, svc *gamify.Service) *UserHandler {
	return &UserHandler{store: st, svc: svc}
}

// GetMe returns the current user's profile
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	u, err := h.store.UserByID(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ToUserDTO(u))
}

type updatePointsRequest struct {
	Points int `json:"points"`
}

// UpdatePoints adds points for the authenticated user. Positive amounts also
// advance the streak and days-strong counters under the day-gap rule.
func (h *UserHandler) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req updatePointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	u, err := h.svc.AccruePoints(r.Context(), userID, req.Points)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":     "Points updated successfully",
		"points":      u.Points,
		"streak":      u.Streak,
		"days_strong": u.DaysStrong,
	})
}
