package config

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxDocumentConcurrency caps the opt-in parallel paragraph correction.
const MaxDocumentConcurrency = 16

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("llm.api_key is required")
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Document.validate(); err != nil {
		return fmt.Errorf("document: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	u, err := url.Parse(l.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", l.BaseURL)
	}

	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}

	temps := []struct {
		name  string
		value float64
	}{
		{"sentence_temperature", l.SentenceTemperature},
		{"chat_temperature", l.ChatTemperature},
		{"correction_temperature", l.CorrectionTemperature},
	}
	for _, t := range temps {
		if t.value < 0 || t.value > 2 {
			return fmt.Errorf("%s must be within [0, 2] (got %v)", t.name, t.value)
		}
	}

	for name, model := range map[string]string{
		"sentence_model":   l.SentenceModel,
		"chat_model":       l.ChatModel,
		"correction_model": l.CorrectionModel,
	} {
		if strings.TrimSpace(model) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	return nil
}

func (d *DocumentConfig) validate() error {
	if d.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", d.MaxUploadBytes)
	}
	if d.Concurrency < 1 || d.Concurrency > MaxDocumentConcurrency {
		return fmt.Errorf("concurrency must be within [1, %d] (got %d)", MaxDocumentConcurrency, d.Concurrency)
	}
	return nil
}
