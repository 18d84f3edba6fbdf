package chatcompletion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

const (
	outcomeSuccess = "success"

	unexpectedResponse = "unexpected response"
)

// Observer receives the outcome of every completion call.
type Observer interface {
	ObserveCompletion(model, outcome string, duration time.Duration)
}

// Client calls an OpenAI-compatible chat-completion endpoint. It is safe for
// concurrent use; one Client per process shares its connection pool.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	observer   Observer
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithObserver attaches an Observer to the client.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client from the LLM configuration.
func NewClient(cfg config.LLMConfig, logger *slog.Logger, opts ...Option) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConns,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	c := &Client{
		url:    cfg.BaseURL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		log: logger.With("adapter", "chatcompletion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends one [system, user] exchange and returns the first choice's
// content with surrounding whitespace removed.
//
// Every failure is a *domain.CompletionError: transport problems are
// FailureNetwork, a body without choices is FailureUpstream (detail taken
// from error.message when present), and an unreadable or empty body is
// FailureMalformedResponse. The call is never retried.
func (c *Client) Complete(ctx context.Context, systemPrompt, userContent string, opts domain.CompletionOptions) (string, error) {
	start := time.Now()

	text, err := c.complete(ctx, domain.NewCompletionRequest(systemPrompt, userContent, opts))

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeOf(err)
	}
	if c.observer != nil {
		c.observer.ObserveCompletion(opts.Model, outcome, time.Since(start))
	}

	return text, err
}

func (c *Client) complete(ctx context.Context, payload domain.CompletionRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("chatcompletion: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chatcompletion: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "completion request",
		slog.String("model", payload.Model),
		slog.Int("prompt_chars", len(payload.Messages[1].Content)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "completion request failed",
			slog.String("model", payload.Model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", domain.NewCompletionError(domain.FailureNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewCompletionError(domain.FailureNetwork, "read response body", err)
	}

	c.log.DebugContext(ctx, "completion response",
		slog.String("model", payload.Model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(raw)),
	)

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", domain.NewCompletionError(domain.FailureMalformedResponse,
			fmt.Sprintf("decode response (status %d)", resp.StatusCode), err)
	}

	if len(parsed.Choices) == 0 {
		detail := unexpectedResponse
		if parsed.Error != nil && parsed.Error.Message != "" {
			detail = parsed.Error.Message
		}
		c.log.WarnContext(ctx, "completion upstream error",
			slog.String("model", payload.Model),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail),
		)
		return "", domain.NewCompletionError(domain.FailureUpstream, detail, nil)
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", domain.NewCompletionError(domain.FailureMalformedResponse, "empty completion", nil)
	}

	return text, nil
}

// outcomeOf returns the metrics label for a failed call, e.g. "network_error".
func outcomeOf(err error) string {
	var ce *domain.CompletionError
	if errors.As(err, &ce) {
		return strings.ToLower(ce.Kind.String())
	}
	return "error"
}
