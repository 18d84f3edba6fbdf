package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	LLM      LLMConfig      `yaml:"llm"`
	Grammar  GrammarConfig  `yaml:"grammar"`
	Document DocumentConfig `yaml:"document"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LLMConfig holds the chat-completion upstream settings and the model
// choice for each use case.
type LLMConfig struct {
	APIKey          string        `yaml:"api_key"           env:"GROQ_API_KEY"          env-required:"true"`
	BaseURL         string        `yaml:"base_url"          env:"LLM_BASE_URL"          env-default:"https://api.groq.com/openai/v1/chat/completions"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"           env-default:"30s"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"LLM_MAX_IDLE_CONNS"    env-default:"16"`
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout" env:"LLM_IDLE_CONN_TIMEOUT" env-default:"90s"`

	SentenceModel         string  `yaml:"sentence_model"         env:"LLM_SENTENCE_MODEL"         env-default:"llama3-70b-8192"`
	SentenceTemperature   float64 `yaml:"sentence_temperature"   env:"LLM_SENTENCE_TEMPERATURE"   env-default:"0.2"`
	ChatModel             string  `yaml:"chat_model"             env:"LLM_CHAT_MODEL"             env-default:"llama3-8b-8192"`
	ChatTemperature       float64 `yaml:"chat_temperature"       env:"LLM_CHAT_TEMPERATURE"       env-default:"0.4"`
	CorrectionModel       string  `yaml:"correction_model"       env:"LLM_CORRECTION_MODEL"       env-default:"llama3-8b-8192"`
	CorrectionTemperature float64 `yaml:"correction_temperature" env:"LLM_CORRECTION_TEMPERATURE" env-default:"0.3"`
}

// GrammarConfig holds response-parsing settings.
type GrammarConfig struct {
	// StrictAnalysis turns a missing section marker into an error instead
	// of an empty field.
	StrictAnalysis bool `yaml:"strict_analysis" env:"GRAMMAR_STRICT_ANALYSIS" env-default:"false"`
}

// DocumentConfig holds document upload settings.
type DocumentConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"DOCUMENT_MAX_UPLOAD_BYTES" env-default:"10485760"`
	// Concurrency is the number of paragraphs corrected in parallel.
	// 1 keeps strict one-at-a-time document order.
	Concurrency int `yaml:"concurrency" env:"DOCUMENT_CONCURRENCY" env-default:"1"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"   env:"METRICS_ENABLED"   env-default:"true"`
	Path      string `yaml:"path"      env:"METRICS_PATH"      env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"grammar_assistant"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
