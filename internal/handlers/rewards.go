package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/gamify"
)

type RewardsHandler struct {
	svc *gamify.Service
}

func NewRewardsHandler(svc *gamify.Service) *RewardsHandler {
	return &RewardsHandler{svc: svc}
}

// List returns the catalog annotated with unlocked (enough points) and
// claimed flags for the current user.
func (h *RewardsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	rewards, err := h.svc.ListRewards(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rewards)
}

type claimRewardRequest struct {
	RewardID int `json:"reward_id"`
}

func (h *RewardsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req claimRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	claimed, err := h.svc.ClaimReward(r.Context(), userID, req.RewardID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Reward claimed successfully",
		"rewards": claimed,
	})
}
