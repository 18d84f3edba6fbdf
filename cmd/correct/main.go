// Command correct runs the document correction pipeline on a local .docx or
// .txt file, without starting the HTTP server. It uses the same
// configuration as the server.
//
// Flags:
//
//	--in       path of the document to correct (required)
//	--out      output path (default: corrected_document.<ext> next to --in)
//	--timeout  overall deadline for the run (default: 30m)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/heartmarshall/grammar-assistant/internal/adapter/provider/chatcompletion"
	"github.com/heartmarshall/grammar-assistant/internal/app"
	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/service/document"
	"github.com/heartmarshall/grammar-assistant/internal/service/grammar"
)

func main() {
	inFlag := flag.String("in", "", "path of the document to correct")
	outFlag := flag.String("out", "", "output path (default: corrected_document.<ext> next to --in)")
	timeoutFlag := flag.Duration("timeout", 30*time.Minute, "overall deadline for the run")
	flag.Parse()

	if *inFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	data, err := os.ReadFile(*inFlag)
	if err != nil {
		logger.Error("read input", slog.String("path", *inFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, *timeoutFlag)
	defer cancel()

	client := chatcompletion.NewClient(cfg.LLM, logger)
	grammarSvc := grammar.NewService(logger, client, cfg.LLM, cfg.Grammar)
	pipeline := document.NewPipeline(logger, grammarSvc, cfg.Document)

	start := time.Now()
	doc, err := pipeline.CorrectDocument(ctx, filepath.Base(*inFlag), data)
	if err != nil {
		logger.Error("correct document", slog.String("path", *inFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := *outFlag
	if out == "" {
		out = filepath.Join(filepath.Dir(*inFlag), doc.Filename)
	}

	if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
		logger.Error("write output", slog.String("path", out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("document corrected",
		slog.String("in", *inFlag),
		slog.String("out", out),
		slog.Int("bytes", len(doc.Data)),
		slog.Duration("took", time.Since(start)),
	)
}
