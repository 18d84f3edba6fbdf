package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

// grammarService defines the minimal interface needed by GrammarHandler.
type grammarService interface {
	AnalyzeSentence(ctx context.Context, sentence string) (domain.SentenceAnalysis, error)
	CoachChat(ctx context.Context, message string) (string, error)
}

// GrammarHandler serves the sentence analysis and coach chat endpoints.
type GrammarHandler struct {
	svc grammarService
	log *slog.Logger
}

// NewGrammarHandler creates a GrammarHandler.
func NewGrammarHandler(svc grammarService, logger *slog.Logger) *GrammarHandler {
	return &GrammarHandler{svc: svc, log: logger.With("handler", "grammar")}
}

type analyzeSentenceRequest struct {
	Sentence string `json:"sentence"`
}

type coachChatRequest struct {
	Message string `json:"message"`
}

type coachChatResponse struct {
	Reply string `json:"reply"`
}

// AnalyzeSentence handles POST /analyze-sentence.
func (h *GrammarHandler) AnalyzeSentence(w http.ResponseWriter, r *http.Request) {
	var req analyzeSentenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.AnalyzeSentence(r.Context(), req.Sentence)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CoachChat handles POST /grammar-coach-chat.
func (h *GrammarHandler) CoachChat(w http.ResponseWriter, r *http.Request) {
	var req coachChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.svc.CoachChat(r.Context(), req.Message)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, coachChatResponse{Reply: reply})
}
