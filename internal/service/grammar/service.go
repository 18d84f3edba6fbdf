package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, systemPrompt, userContent string, opts domain.CompletionOptions) (string, error)
}

// Service implements the grammar use cases on top of a completion client.
type Service struct {
	client completer
	cfg    config.LLMConfig
	strict bool
	log    *slog.Logger
}

// NewService creates a new grammar service.
func NewService(
	log *slog.Logger,
	client completer,
	llm config.LLMConfig,
	grammar config.GrammarConfig,
) *Service {
	return &Service{
		client: client,
		cfg:    llm,
		strict: grammar.StrictAnalysis,
		log:    log.With("service", "grammar"),
	}
}

// AnalyzeSentence corrects, scores and explains a single sentence.
func (s *Service) AnalyzeSentence(ctx context.Context, sentence string) (domain.SentenceAnalysis, error) {
	if strings.TrimSpace(sentence) == "" {
		return domain.SentenceAnalysis{}, domain.NewValidationError("sentence", "required")
	}

	p := SentenceAnalysisPrompt(sentence)
	raw, err := s.client.Complete(ctx, p.System, p.User, domain.CompletionOptions{
		Model:       s.cfg.SentenceModel,
		Temperature: s.cfg.SentenceTemperature,
	})
	if err != nil {
		return domain.SentenceAnalysis{}, fmt.Errorf("analyze sentence: %w", err)
	}

	if s.strict {
		a, err := ParseSentenceAnalysisStrict(raw)
		if err != nil {
			return domain.SentenceAnalysis{}, fmt.Errorf("analyze sentence: %w", err)
		}
		return a, nil
	}

	a := ParseSentenceAnalysis(raw)
	if a.Corrected == "" && a.Score == "" && a.Explanation == "" {
		s.log.WarnContext(ctx, "sentence analysis has no markers",
			slog.String("marker_contract", MarkerContractVersion),
			slog.Int("raw_chars", len(raw)),
		)
	}
	return a, nil
}

// CoachChat answers a free-form grammar question. The reply is returned
// as produced by the model, minus surrounding whitespace.
func (s *Service) CoachChat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.NewValidationError("message", "required")
	}

	p := CoachChatPrompt(message)
	reply, err := s.client.Complete(ctx, p.System, p.User, domain.CompletionOptions{
		Model:       s.cfg.ChatModel,
		Temperature: s.cfg.ChatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("coach chat: %w", err)
	}
	return reply, nil
}

// CorrectText returns the first line of the model's correction of text.
// Blank text is a validation error; callers that skip blanks should do so
// before calling.
func (s *Service) CorrectText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", "required")
	}

	p := CorrectionPrompt(text)
	raw, err := s.client.Complete(ctx, p.System, p.User, domain.CompletionOptions{
		Model:       s.cfg.CorrectionModel,
		Temperature: s.cfg.CorrectionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("correct text: %w", err)
	}
	return ExtractFirstLine(raw), nil
}
