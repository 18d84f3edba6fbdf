package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/grammar-assistant/internal/adapter/provider/chatcompletion"
	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/metrics"
	"github.com/heartmarshall/grammar-assistant/internal/service/document"
	"github.com/heartmarshall/grammar-assistant/internal/service/grammar"
	"github.com/heartmarshall/grammar-assistant/internal/service/words"
	"github.com/heartmarshall/grammar-assistant/internal/transport/middleware"
	"github.com/heartmarshall/grammar-assistant/internal/transport/rest"
)

// NewHandler builds the service graph and returns the root HTTP handler.
// A nil collector disables metrics for both the upstream client and HTTP
// requests.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	collector *metrics.Collector,
	probe rest.ReadinessProbe,
) http.Handler {
	var clientOpts []chatcompletion.Option
	if collector != nil {
		clientOpts = append(clientOpts, chatcompletion.WithObserver(collector))
	}
	client := chatcompletion.NewClient(cfg.LLM, logger, clientOpts...)

	grammarSvc := grammar.NewService(logger, client, cfg.LLM, cfg.Grammar)
	pipeline := document.NewPipeline(logger, grammarSvc, cfg.Document)
	wordsSvc := words.NewService(nil)

	healthHandler := rest.NewHealthHandler(probe, BuildVersion())
	grammarHandler := rest.NewGrammarHandler(grammarSvc, logger)
	documentHandler := rest.NewDocumentHandler(pipeline, cfg.Document.MaxUploadBytes, logger)
	wordsHandler := rest.NewWordsHandler(wordsSvc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /analyze-sentence", grammarHandler.AnalyzeSentence)
	mux.HandleFunc("POST /grammar-coach-chat", grammarHandler.CoachChat)
	mux.HandleFunc("POST /upload-document", documentHandler.Upload)
	mux.HandleFunc("GET /daily-grammar-words", wordsHandler.Daily)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	}
	if collector != nil {
		mux.Handle("GET "+cfg.Metrics.Path, collector.Handler())
		mws = append(mws, middleware.Metrics(collector))
	}
	mws = append(mws, middleware.CORS(cfg.CORS))

	logger.Info("routes registered",
		slog.Bool("metrics", collector != nil),
		slog.Int("document_concurrency", cfg.Document.Concurrency),
	)

	return middleware.Chain(mws...)(mux)
}
