package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/store"
)

var motivationalMessages = []string{
	"Remember, every ending is a new beginning.",
	"You are stronger than you know.",
	"Focus on self-love and growth today.",
	"Take time to heal and rediscover yourself.",
	"It's okay to not be okay sometimes.",
	"Your worth is not defined by someone else's inability to see it.",
	"Healing is not linear, but it is possible.",
	"Today is another step forward in your journey.",
	"You deserve peace and happiness.",
	"Trust the process and be patient with yourself.",
}

type ContentHandler struct {
	store store.Store
}

func NewContentHandler(st store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

// GenerateMessage returns a random motivational message.
func (h *ContentHandler) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	msg := motivationalMessages[rand.Intn(len(motivationalMessages))]
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"message": msg})
}

// BreakupMessages lists the script library, optionally filtered by
// ?type=emoji|call|text.
func (h *ContentHandler) BreakupMessages(w http.ResponseWriter, r *http.Request) {
	msgType := r.URL.Query().Get("type")
	switch msgType {
	case "", "emoji", "call", "text":
	default:
		http.Error(w, "invalid type; expected emoji, call or text", http.StatusBadRequest)
		return
	}
	msgs, err := h.store.BreakupMessages(r.Context(), msgType)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msgs)
}
