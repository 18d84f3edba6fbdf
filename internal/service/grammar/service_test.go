package grammar

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

//go:generate moq -out completer_mock_test.go -pkg grammar . completer

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		SentenceModel:         "llama3-70b-8192",
		SentenceTemperature:   0.2,
		ChatModel:             "llama3-8b-8192",
		ChatTemperature:       0.4,
		CorrectionModel:       "llama3-8b-8192",
		CorrectionTemperature: 0.3,
	}
}

func newTestService(t *testing.T, mock *completerMock, strict bool) *Service {
	t.Helper()
	return NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		mock,
		testLLMConfig(),
		config.GrammarConfig{StrictAnalysis: strict},
	)
}

func replying(text string) *completerMock {
	return &completerMock{
		CompleteFunc: func(ctx context.Context, systemPrompt, userContent string, opts domain.CompletionOptions) (string, error) {
			return text, nil
		},
	}
}

// ---------------------------------------------------------------------------
// AnalyzeSentence
// ---------------------------------------------------------------------------

func TestAnalyzeSentence_Success(t *testing.T) {
	t.Parallel()

	mock := replying("**Corrected sentence:** She goes to school.\n**Grammar score:** 6\n**Explanation:** Verb agreement.")
	svc := newTestService(t, mock, false)

	got, err := svc.AnalyzeSentence(context.Background(), "She go to school.")
	require.NoError(t, err)
	assert.Equal(t, domain.SentenceAnalysis{
		Corrected:   "She goes to school.",
		Score:       "6",
		Explanation: "Verb agreement.",
	}, got)

	calls := mock.CompleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "She go to school.", calls[0].UserContent)
	assert.Equal(t, sentenceAnalysisSystem, calls[0].SystemPrompt)
	assert.Equal(t, domain.CompletionOptions{Model: "llama3-70b-8192", Temperature: 0.2}, calls[0].Opts)
}

func TestAnalyzeSentence_LenientMissingMarkers(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, replying("Looks fine to me."), false)

	got, err := svc.AnalyzeSentence(context.Background(), "Hello.")
	require.NoError(t, err)
	assert.Equal(t, domain.SentenceAnalysis{}, got)
}

func TestAnalyzeSentence_StrictMissingMarkers(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, replying("**Corrected sentence:** Hello."), true)

	_, err := svc.AnalyzeSentence(context.Background(), "Hello.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestAnalyzeSentence_EmptyInput(t *testing.T) {
	t.Parallel()

	mock := replying("unused")
	svc := newTestService(t, mock, false)

	_, err := svc.AnalyzeSentence(context.Background(), "   \n")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, mock.CompleteCalls())
}

func TestAnalyzeSentence_CompletionFailure(t *testing.T) {
	t.Parallel()

	mock := &completerMock{
		CompleteFunc: func(ctx context.Context, systemPrompt, userContent string, opts domain.CompletionOptions) (string, error) {
			return "", domain.NewCompletionError(domain.FailureUpstream, "rate limited", nil)
		},
	}
	svc := newTestService(t, mock, false)

	_, err := svc.AnalyzeSentence(context.Background(), "He go.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Contains(t, err.Error(), "rate limited")
}

// ---------------------------------------------------------------------------
// CoachChat
// ---------------------------------------------------------------------------

func TestCoachChat_Success(t *testing.T) {
	t.Parallel()

	reply := "## Present Perfect\n- Use it for experiences.\n- Example: I have been to Paris."
	mock := replying(reply)
	svc := newTestService(t, mock, false)

	got, err := svc.CoachChat(context.Background(), "Explain the present perfect")
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	calls := mock.CompleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, coachSystem, calls[0].SystemPrompt)
	assert.Contains(t, calls[0].UserContent, "User: Explain the present perfect")
	assert.Equal(t, domain.CompletionOptions{Model: "llama3-8b-8192", Temperature: 0.4}, calls[0].Opts)
}

func TestCoachChat_EmptyInput(t *testing.T) {
	t.Parallel()

	mock := replying("unused")
	svc := newTestService(t, mock, false)

	_, err := svc.CoachChat(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, mock.CompleteCalls())
}

func TestCoachChat_NetworkFailure(t *testing.T) {
	t.Parallel()

	mock := &completerMock{
		CompleteFunc: func(ctx context.Context, systemPrompt, userContent string, opts domain.CompletionOptions) (string, error) {
			return "", domain.NewCompletionError(domain.FailureNetwork, "request failed", context.DeadlineExceeded)
		},
	}
	svc := newTestService(t, mock, false)

	_, err := svc.CoachChat(context.Background(), "hi")
	assert.True(t, errors.Is(err, domain.ErrNetwork))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// ---------------------------------------------------------------------------
// CorrectText
// ---------------------------------------------------------------------------

func TestCorrectText_FirstLineOnly(t *testing.T) {
	t.Parallel()

	mock := replying("Here is the corrected text:\nHe went home.\n\nI changed 'go' to 'went'.")
	svc := newTestService(t, mock, false)

	got, err := svc.CorrectText(context.Background(), "he go home")
	require.NoError(t, err)
	assert.Equal(t, "He went home.", got)

	calls := mock.CompleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Correct the grammar of this text: he go home", calls[0].UserContent)
	assert.Equal(t, domain.CompletionOptions{Model: "llama3-8b-8192", Temperature: 0.3}, calls[0].Opts)
}

func TestCorrectText_Blank(t *testing.T) {
	t.Parallel()

	mock := replying("unused")
	svc := newTestService(t, mock, false)

	_, err := svc.CorrectText(context.Background(), " \t ")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, mock.CompleteCalls())
}
