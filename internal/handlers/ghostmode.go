package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/gamify"
	"github.com/crumble-app/crumble-backend/internal/models"
)

type GhostModeHandler struct {
	svc *gamify.Service
}

func NewGhostModeHandler(svc *gamify.Service) *GhostModeHandler {
	return &GhostModeHandler{svc: svc}
}

func (h *GhostModeHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	gm, err := h.svc.GhostMode(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gm)
}

// UpdateSettings fully replaces the four toggles; omitted fields come back
// false rather than keeping their old value.
func (h *GhostModeHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var gm models.GhostModeSettings
	if err := json.NewDecoder(r.Body).Decode(&gm); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetGhostMode(r.Context(), userID, gm); err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":  "Ghost mode settings updated successfully",
		"settings": gm,
	})
}
