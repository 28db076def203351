package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crumble-app/crumble-backend/internal/models"
	"github.com/crumble-app/crumble-backend/internal/store"
)

type SocialHandler struct {
	store store.Store
}

func NewSocialHandler(st store.Store) *SocialHandler {
	return &SocialHandler{store: st}
}

func (h *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	platforms, err := h.store.SocialPlatforms(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if platforms == nil {
		platforms = []models.SocialPlatform{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(platforms)
}

type connectPlatformRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (h *SocialHandler) Connect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req connectPlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "platform name required", http.StatusBadRequest)
		return
	}
	if err := h.store.ConnectPlatform(r.Context(), userID, req.Name, req.Username); err != nil {
		writeDomainError(w, err)
		return
	}
	platforms, err := h.store.SocialPlatforms(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":   "Platform " + req.Name + " connected successfully",
		"platforms": platforms,
	})
}

type disconnectPlatformRequest struct {
	PlatformName string `json:"platform_name"`
}

func (h *SocialHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req disconnectPlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlatformName == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.store.DisconnectPlatform(r.Context(), userID, req.PlatformName); err != nil {
		writeDomainError(w, err)
		return
	}
	platforms, err := h.store.SocialPlatforms(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if platforms == nil {
		platforms = []models.SocialPlatform{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":   "Platform " + req.PlatformName + " disconnected successfully",
		"platforms": platforms,
	})
}
