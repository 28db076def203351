package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/gamify"
)

type AchievementsHandler struct {
	svc *gamify.Service
}

func NewAchievementsHandler(svc *gamify.Service) *AchievementsHandler {
	return &AchievementsHandler{svc: svc}
}

// List evaluates the catalog against the user's live counters. First-time
// completions are recorded and their point rewards granted as part of the
// call.
func (h *AchievementsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	statuses, err := h.svc.EvaluateAchievements(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statuses)
}

// Recent lists completed achievements most-recent-first without evaluating.
func (h *AchievementsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	recent, err := h.svc.RecentAchievements(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if recent == nil {
		recent = []gamify.CompletedAchievement{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recent)
}
