package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumble-app/crumble-backend/internal/models"
	"github.com/crumble-app/crumble-backend/internal/store"
)

type QuizHandler struct {
	store store.Store
}

func NewQuizHandler(st store.Store) *QuizHandler {
	return &QuizHandler{store: st}
}

type quizResponseRequest struct {
	QuestionID int    `json:"question_id"`
	Response   string `json:"response"`
}

func (h *QuizHandler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req quizResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestionID <= 0 || req.Response == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.store.SaveQuizResponse(r.Context(), userID, req.QuestionID, req.Response); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *QuizHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	responses, err := h.store.QuizResponses(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if responses == nil {
		responses = []models.QuizResponse{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}
