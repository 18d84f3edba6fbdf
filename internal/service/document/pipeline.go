package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/grammar-assistant/internal/config"
	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

type corrector interface {
	CorrectText(ctx context.Context, text string) (string, error)
}

// Pipeline corrects every text unit of an uploaded document and re-encodes
// it in its original format.
type Pipeline struct {
	corrector   corrector
	concurrency int
	log         *slog.Logger
}

// NewPipeline creates a document pipeline. A concurrency of 1 or less
// corrects units one at a time in document order.
func NewPipeline(log *slog.Logger, corrector corrector, cfg config.DocumentConfig) *Pipeline {
	return &Pipeline{
		corrector:   corrector,
		concurrency: cfg.Concurrency,
		log:         log.With("service", "document"),
	}
}

// CorrectDocument corrects the document named filename. The format is taken
// from the file extension; anything other than .docx or .txt fails with
// domain.ErrUnsupportedFormat before any unit is sent upstream. If any unit
// fails the whole document fails.
func (p *Pipeline) CorrectDocument(ctx context.Context, filename string, data []byte) (*domain.CorrectedDocument, error) {
	format, err := domain.FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	doc, err := Open(format, data)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	corrected, err := p.correct(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("correct %s document: %w", format, err)
	}

	out, err := doc.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", format, err)
	}

	p.log.InfoContext(ctx, "document corrected",
		slog.String("format", format.String()),
		slog.Int("units", len(doc.Units())),
		slog.Int("corrected", corrected),
		slog.Int("bytes_in", len(data)),
		slog.Int("bytes_out", len(out)),
		slog.Duration("duration", time.Since(start)),
	)

	return domain.NewCorrectedDocument(format, out), nil
}

// correct sends every non-blank unit through the corrector and writes the
// results back in document order. It returns the number of units replaced.
func (p *Pipeline) correct(ctx context.Context, doc Container) (int, error) {
	units := doc.Units()

	var pending []int
	for i, u := range units {
		if strings.TrimSpace(u) != "" {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	results := make([]string, len(units))
	if p.concurrency <= 1 {
		for _, i := range pending {
			text, err := p.corrector.CorrectText(ctx, units[i])
			if err != nil {
				return 0, fmt.Errorf("unit %d: %w", i, err)
			}
			results[i] = text
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.concurrency)
		for _, i := range pending {
			g.Go(func() error {
				text, err := p.corrector.CorrectText(gctx, units[i])
				if err != nil {
					return fmt.Errorf("unit %d: %w", i, err)
				}
				results[i] = text
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	for _, i := range pending {
		doc.SetUnit(i, results[i])
	}
	return len(pending), nil
}
