package rest

import (
	"net/http"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

type wordsService interface {
	Daily() []domain.WordEntry
}

// WordsHandler serves the daily vocabulary words.
type WordsHandler struct {
	svc wordsService
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc wordsService) *WordsHandler {
	return &WordsHandler{svc: svc}
}

type dailyWordsResponse struct {
	Words []domain.WordEntry `json:"words"`
}

// Daily handles GET /daily-grammar-words.
func (h *WordsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyWordsResponse{Words: h.svc.Daily()})
}
